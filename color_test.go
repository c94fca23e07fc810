package serato_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
)

// TestColorBijection checks that WriteColor(ReadColor(v)) == v for a
// representative sample of 24-bit values (corners, primaries, and a spread
// of arbitrary ones) rather than all 2^24.
func TestColorBijection(t *testing.T) {
	samples := [][3]byte{
		{0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0x00, 0x00},
		{0x00, 0xFF, 0x00},
		{0x00, 0x00, 0xFF},
		{0xCC, 0x00, 0x00},
		{0x12, 0x34, 0x56},
		{0x7A, 0x12, 0x00},
	}
	for _, rgb := range samples {
		c, err := serato.ReadColor(bytes.NewReader(rgb[:]))
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = serato.WriteColor(&buf, c)
		require.NoError(t, err)
		assert.Equal(t, rgb[:], buf.Bytes())
	}
}

func TestNewColorRGB(t *testing.T) {
	c := serato.NewColor(0x10, 0x20, 0x30)
	r, g, b := c.RGB()
	assert.Equal(t, uint8(0x10), r)
	assert.Equal(t, uint8(0x20), g)
	assert.Equal(t, uint8(0x30), b)
}
