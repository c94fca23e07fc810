package serato_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mewkiz/serato"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "parse", serato.KindParse.String())
	assert.Equal(t, "base64", serato.KindBase64.String())
	assert.Equal(t, "io", serato.KindIO.String())
	assert.Equal(t, "unsupported", serato.KindUnsupported.String())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := serato.WrapIOError("op", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
}

func TestParseErrorfMessage(t *testing.T) {
	err := serato.ParseErrorf("tag.Foo", "bad byte %d", 3)
	assert.Contains(t, err.Error(), "tag.Foo")
	assert.Contains(t, err.Error(), "bad byte 3")
	assert.Equal(t, serato.KindParse, err.Kind)
}
