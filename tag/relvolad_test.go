package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag"
	"github.com/mewkiz/serato/tag/format"
)

// RelVolAd FLAC decoded payload 01 00 01 00 00 -> Version{1,0}; the
// trailing three bytes must be the literal 01 00 00, and mutating any of
// them must make parse fail.
func TestRelVolAdFLACConcreteScenario(t *testing.T) {
	payload := []byte{0x01, 0x00, 0x01, 0x00, 0x00}
	value, err := format.EncodeFLAC(payload, 0)
	require.NoError(t, err)

	rv, err := tag.ParseRelVolAdFLAC(value)
	require.NoError(t, err)
	assert.Equal(t, serato.Version{Major: 1, Minor: 0}, rv.Version)

	out, err := rv.WriteFLAC()
	require.NoError(t, err)
	assert.Equal(t, value, out)
}

func TestRelVolAdRejectsMutatedLiteralTail(t *testing.T) {
	for i := 2; i < 5; i++ {
		payload := []byte{0x01, 0x00, 0x01, 0x00, 0x00}
		payload[i] ^= 0xFF
		value, err := format.EncodeFLAC(payload, 0)
		require.NoError(t, err)

		_, err = tag.ParseRelVolAdFLAC(value)
		assert.Error(t, err, "byte %d mutated should fail to parse", i)
	}
}

func TestRelVolAdMP4RoundTrip(t *testing.T) {
	rv := &tag.RelVolAd{Version: serato.Version{Major: 1, Minor: 0}}
	value, err := rv.WriteMP4()
	require.NoError(t, err)

	got, err := tag.ParseRelVolAdMP4(value)
	require.NoError(t, err)
	assert.Equal(t, rv.Version, got.Version)
}
