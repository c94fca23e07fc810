package format_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato/tag/format"
)

func TestEncodeDecodeEnvelopedRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		size    int
	}{
		{"empty", nil, 1},
		{"short", []byte("hi"), 8},
		{"no extra padding", []byte("hello world"), 0},
		{"long enough to wrap", bytes.Repeat([]byte("x"), 100), 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := format.EncodeEnveloped(&buf, tt.payload, tt.size)
			require.NoError(t, err)
			assert.Equal(t, buf.Len(), n)

			payload, size, err := format.DecodeEnveloped("test", buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tt.payload, payload)
			assert.Equal(t, buf.Len(), size)
		})
	}
}

func TestDecodeEnvelopedChunkBoundaryInvariance(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, 0123456789")

	var oneLine bytes.Buffer
	_, err := format.EncodeEnveloped(&oneLine, payload, 0)
	require.NoError(t, err)

	// Re-chunk by inserting a newline at a different (legal chunk-boundary)
	// position than EncodeEnveloped chose, and confirm it still parses to
	// the same payload.
	raw := oneLine.Bytes()
	nullIdx := bytes.IndexByte(raw, 0)
	require.Greater(t, nullIdx, 4)
	rechunked := append(append(append([]byte{}, raw[:4]...), '\n'), raw[4:]...)

	gotPayload, _, err := format.DecodeEnveloped("test", rechunked)
	require.NoError(t, err)
	assert.Equal(t, payload, gotPayload)
}

func TestDecodeEnvelopedMissingPaddingRetry(t *testing.T) {
	// "TWFtYQ" is the raw (unpadded) base64 of "Mama" (6 chars, a multiple
	// of 4 plus 2 — a valid raw-encoding length on its own). Dropping its
	// last character leaves a 5-character chunk whose length is 1 mod 4, a
	// length no amount of valid base64 can produce: the first decode
	// attempt must fail, and only succeeds after DecodeEnveloped's retry
	// appends a single 'A' byte, reproducing Serato's own emitter bug.
	data := append([]byte("TWFtY"), 0x00)
	_, _, err := format.DecodeEnveloped("test", data)
	require.NoError(t, err)
}

func TestDecodeEnvelopedRejectsNonZeroTrailingByte(t *testing.T) {
	data := []byte("aGk\x00\x01")
	_, _, err := format.DecodeEnveloped("test", data)
	assert.Error(t, err)
}
