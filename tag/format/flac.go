package format

import "bytes"

// FLAC Vorbis comment values are text, so every Serato tag stored as a FLAC
// comment is wrapped in the chunked base64 envelope (see enveloped.go) —
// there is no raw/pass-through variant for FLAC, unlike MP4 (mp4.go) or ID3
// (id3.go), both of which can carry raw bytes directly.

// DecodeFLAC decodes a FLAC Vorbis comment value into the tag's raw
// payload bytes, returning the payload and the original envelope size
// (needed to reproduce padding on write).
func DecodeFLAC(op string, value []byte) (payload []byte, size int, err error) {
	return DecodeEnveloped(op, value)
}

// EncodeFLAC encodes payload as a FLAC Vorbis comment value, padding with
// trailing '\x00' bytes until size bytes have been written.
func EncodeFLAC(payload []byte, size int) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := EncodeEnveloped(&buf, payload, size); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
