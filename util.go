package serato

import (
	"io"
	"unicode/utf8"

	"github.com/mewkiz/pkg/readerutil"
)

// ReadNullString reads bytes from r up to and including a 0x00 terminator
// and returns the bytes before the terminator decoded as UTF-8. An empty
// string (a lone terminator) is legal.
func ReadNullString(r io.Reader) (string, error) {
	var buf []byte
	for {
		b, err := readerutil.ReadByte(r)
		if err != nil {
			return "", WrapParseError("ReadNullString", err)
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	if !utf8.Valid(buf) {
		return "", ParseErrorf("ReadNullString", "invalid UTF-8 in null-terminated string: %q", buf)
	}
	return string(buf), nil
}

// WriteNullString writes s followed by a 0x00 terminator to w.
func WriteNullString(w io.Writer, s string) (int, error) {
	n, err := w.Write(append([]byte(s), 0))
	if err != nil {
		return n, WrapIOError("WriteNullString", err)
	}
	return n, nil
}

// ReadBool reads a single byte from r and reports whether it is non-zero.
func ReadBool(r io.Reader) (bool, error) {
	b, err := readerutil.ReadByte(r)
	if err != nil {
		return false, WrapParseError("ReadBool", err)
	}
	return b != 0, nil
}

// WriteBool writes a single byte to w: 1 if value, 0 otherwise.
func WriteBool(w io.Writer, value bool) (int, error) {
	b := byte(0)
	if value {
		b = 1
	}
	n, err := w.Write([]byte{b})
	if err != nil {
		return n, WrapIOError("WriteBool", err)
	}
	return n, nil
}

// ExpectBytes reads len(want) bytes from r and returns an error if they
// don't match want exactly.
func ExpectBytes(r io.Reader, op string, want []byte) error {
	buf := make([]byte, len(want))
	if _, err := io.ReadFull(r, buf); err != nil {
		return WrapParseError(op, err)
	}
	for i := range want {
		if buf[i] != want[i] {
			return ParseErrorf(op, "unexpected bytes: want % x, got % x", want, buf)
		}
	}
	return nil
}
