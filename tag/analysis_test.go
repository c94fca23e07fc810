package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag"
)

// Analysis ID3 payload 02 01 -> Version{major:2,minor:1}.
func TestAnalysisID3ConcreteScenario(t *testing.T) {
	data := []byte{0x02, 0x01}

	a, err := tag.ParseAnalysisID3(data)
	require.NoError(t, err)
	assert.Equal(t, serato.Version{Major: 2, Minor: 1}, a.Version)

	out, err := a.WriteID3()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

// Analysis Ogg payload ASCII "2.1" -> same value.
func TestAnalysisOggConcreteScenario(t *testing.T) {
	a, err := tag.ParseAnalysisOgg([]byte("2.1"))
	require.NoError(t, err)
	assert.Equal(t, serato.Version{Major: 2, Minor: 1}, a.Version)

	out, err := a.WriteOgg()
	require.NoError(t, err)
	assert.Equal(t, []byte("2.1"), out)
}

func TestAnalysisFLACRoundTrip(t *testing.T) {
	a := &tag.Analysis{Version: serato.Version{Major: 2, Minor: 1}}
	value, err := a.WriteFLAC()
	require.NoError(t, err)

	got, err := tag.ParseAnalysisFLAC(value)
	require.NoError(t, err)
	assert.Equal(t, a.Version, got.Version)
}

func TestAnalysisMP4RoundTrip(t *testing.T) {
	a := &tag.Analysis{Version: serato.Version{Major: 1, Minor: 0}}
	value, err := a.WriteMP4()
	require.NoError(t, err)

	got, err := tag.ParseAnalysisMP4(value)
	require.NoError(t, err)
	assert.Equal(t, a.Version, got.Version)
}

func TestAnalysisOggRejectsMalformed(t *testing.T) {
	_, err := tag.ParseAnalysisOgg([]byte("not-a-version"))
	assert.Error(t, err)
}
