package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag"
)

func TestVidAssocRoundTrip(t *testing.T) {
	v := &tag.VidAssoc{
		Version: serato.Version{Major: 1, Minor: 0},
		Tail:    []byte{0xAA, 0xBB, 0xCC},
	}
	value, err := v.WriteID3()
	require.NoError(t, err)

	got, err := tag.ParseVidAssocID3(value)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	flacValue, err := v.WriteFLAC()
	require.NoError(t, err)
	gotFLAC, err := tag.ParseVidAssocFLAC(flacValue)
	require.NoError(t, err)
	assert.Equal(t, v.Version, gotFLAC.Version)
	assert.Equal(t, v.Tail, gotFLAC.Tail)
}
