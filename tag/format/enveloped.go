// Package format adapts raw Serato tag payload bytes to and from the four
// host container envelopes: ID3 GEOB, FLAC/Ogg Vorbis comments, and MP4
// atoms. Only the wrapping conventions live here; the per-tag-kind grammars
// live in the parent tag package.
package format

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/mewkiz/serato"
)

const (
	// maxChunkLen is the maximum number of base64 characters Serato ever
	// emits on a single line before inserting a separator.
	maxChunkLen = 72
)

func isBase64Byte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '+' || b == '/':
		return true
	default:
		return false
	}
}

// DecodeEnveloped decodes Serato's chunked, line-wrapped base64 envelope: a
// run of chunks (each up to 72 base64 characters) separated by '\n' and
// terminated by the first '\x00', followed by arbitrary trailing '\x00'
// padding. It returns the decoded payload and the total number of input
// bytes consumed (chunks, separators, terminator and padding), so that a
// later write can reproduce the exact original length.
//
// This single implementation backs both the FLAC/MP4-freeform/Ogg envelope
// and the Markers2 tag's own inner chunked encoding — the two grammars are
// byte-for-byte identical.
func DecodeEnveloped(op string, data []byte) (payload []byte, size int, err error) {
	size = len(data)
	var decoded bytes.Buffer
	pos := 0
	// Collect chunks, separated by '\n', until the next byte is '\x00'.
	for pos < len(data) && data[pos] != 0 {
		start := pos
		for pos < len(data) && isBase64Byte(data[pos]) {
			pos++
		}
		chunk := data[start:pos]
		if len(chunk) == 0 {
			return nil, 0, serato.ParseErrorf(op, "enveloped base64: empty chunk at byte %d", start)
		}
		if len(chunk) > maxChunkLen {
			return nil, 0, serato.ParseErrorf(op, "enveloped base64: chunk exceeds %d bytes", maxChunkLen)
		}
		decodedChunk, err := decodeBase64Chunk(chunk)
		if err != nil {
			return nil, 0, serato.WrapBase64Error(op, err)
		}
		decoded.Write(decodedChunk)

		if pos >= len(data) {
			return nil, 0, serato.ParseErrorf(op, "enveloped base64: chunk at byte %d not terminated by '\\n' or '\\x00'", start)
		}
		switch data[pos] {
		case '\n':
			pos++
		case 0:
			// Next iteration's loop condition stops on this byte.
		default:
			return nil, 0, serato.ParseErrorf(op, "enveloped base64: unexpected byte 0x%02x after chunk", data[pos])
		}
	}
	if pos >= len(data) {
		return nil, 0, serato.ParseErrorf(op, "enveloped base64: unterminated chunk sequence")
	}
	pos++ // consume the terminating '\x00'
	// Remaining bytes must all be '\x00' padding.
	for _, b := range data[pos:] {
		if b != 0 {
			return nil, 0, serato.ParseErrorf(op, "enveloped base64: non-zero byte in trailing padding")
		}
	}
	return decoded.Bytes(), size, nil
}

// decodeBase64Chunk decodes a single base64 chunk as unpadded base64. If
// that fails (as it does for a chunk whose length is 1 mod 4), it retries
// once with an appended 'A' byte. Serato's own emitter drops trailing
// padding (and occasionally a character); this reproduces that
// bug-compatibly.
func decodeBase64Chunk(chunk []byte) ([]byte, error) {
	out, err := base64.RawStdEncoding.DecodeString(string(chunk))
	if err == nil {
		return out, nil
	}
	padded := append(append([]byte{}, chunk...), 'A')
	out, err2 := base64.RawStdEncoding.DecodeString(string(padded))
	if err2 != nil {
		return nil, err
	}
	return out, nil
}

// EncodeEnveloped writes payload to w using Serato's chunked, line-wrapped
// base64 envelope: chunks of up to 72 base64 characters separated by '\n',
// a final '\x00' terminator, and then '\x00' padding until size bytes have
// been written in total. If size is less than the natural encoded length,
// no padding is written (the natural length is used instead).
func EncodeEnveloped(w io.Writer, payload []byte, size int) (int, error) {
	encoded := base64.RawStdEncoding.EncodeToString(payload)
	written := 0
	for len(encoded) > 0 {
		n := maxChunkLen
		if n > len(encoded) {
			n = len(encoded)
		}
		chunk := encoded[:n]
		encoded = encoded[n:]
		nw, err := io.WriteString(w, chunk)
		written += nw
		if err != nil {
			return written, serato.WrapIOError("EncodeEnveloped", err)
		}
		if len(encoded) > 0 {
			nw, err = io.WriteString(w, "\n")
			written += nw
			if err != nil {
				return written, serato.WrapIOError("EncodeEnveloped", err)
			}
		}
	}
	nw, err := w.Write([]byte{0})
	written += nw
	if err != nil {
		return written, serato.WrapIOError("EncodeEnveloped", err)
	}
	for written < size {
		nw, err = w.Write([]byte{0})
		written += nw
		if err != nil {
			return written, serato.WrapIOError("EncodeEnveloped", err)
		}
	}
	return written, nil
}
