// Package serato provides access to the binary metadata tags that Serato DJ
// software embeds inside audio files: analysis version, auto-gain, beatgrid,
// cue points, saved loops, Flip edit sequences, track color and BPM-lock
// state.
//
// The tag payload codecs live in the tag sub-package; this package holds the
// primitives (Version, Color) and the error type shared by every layer.
package serato

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the class of failure a Error represents.
type Kind int

// Error kinds.
const (
	// KindParse means the grammar was violated: truncation, bad UTF-8, a
	// fixed byte that didn't match, a length mismatch, or an unsupported
	// version where the version is constrained.
	KindParse Kind = iota
	// KindBase64 means base64 decoding failed even after the one-character
	// retry that format.DecodeEnveloped makes on each chunk.
	KindBase64
	// KindIO means the underlying writer failed during serialisation.
	KindIO
	// KindUnsupported means the caller asked for an envelope variant that a
	// tag kind does not ship in, e.g. Markers on FLAC.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindBase64:
		return "base64"
	case KindIO:
		return "io"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every codec in this module. Op
// names the failing operation (e.g. "tag.ParseMarkers2ID3") for context;
// Err, when present, is the wrapped underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap allows errors.Is / errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ParseErrorf returns a KindParse Error, wrapping no cause, describing a
// grammar violation at op.
func ParseErrorf(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Op: op, Err: errors.Errorf(format, args...)}
}

// WrapParseError returns a KindParse Error wrapping err, the cause of a
// grammar violation at op.
func WrapParseError(op string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Err: errors.WithMessage(err, "parse")}
}

// WrapBase64Error returns a KindBase64 Error wrapping err.
func WrapBase64Error(op string, err error) *Error {
	return &Error{Kind: KindBase64, Op: op, Err: errors.WithMessage(err, "base64 decode")}
}

// WrapIOError returns a KindIO Error wrapping err.
func WrapIOError(op string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// Unsupportedf returns a KindUnsupported Error describing an envelope a tag
// kind does not ship in.
func Unsupportedf(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnsupported, Op: op, Err: errors.Errorf(format, args...)}
}
