package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato/tag/format"
)

func TestID3PassThrough(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	decoded, err := format.DecodeID3(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	encoded, err := format.EncodeID3(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, encoded)
}

func TestMP4RawPassThrough(t *testing.T) {
	payload := []byte{0xAA, 0xBB}
	decoded, err := format.DecodeMP4Raw(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestMP4FreeformRoundTrip(t *testing.T) {
	payload := []byte("hello markers2")
	value, err := format.EncodeMP4Freeform(payload, 0)
	require.NoError(t, err)

	got, _, err := format.DecodeMP4Freeform("test", value)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
