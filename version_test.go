package serato_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
)

func TestVersionRoundTrip(t *testing.T) {
	golden := []serato.Version{
		{Major: 0, Minor: 0},
		{Major: 2, Minor: 1},
		{Major: 255, Minor: 255},
	}
	for _, v := range golden {
		var buf bytes.Buffer
		n, err := serato.WriteVersion(&buf, v)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		got, err := serato.ReadVersion(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadVersionTruncated(t *testing.T) {
	_, err := serato.ReadVersion(bytes.NewReader([]byte{0x01}))
	require.Error(t, err)
	var serr *serato.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, serato.KindParse, serr.Kind)
}
