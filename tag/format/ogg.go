package format

import "bytes"

// Ogg comment values are base64 for most Serato tags; Analysis is the one
// exception, stored as the ASCII string "<major>.<minor>" instead — that
// conversion is specific enough to the Analysis grammar that it lives in
// tag/analysis.go rather than here.

// DecodeOgg decodes a base64 Ogg comment value into the tag's raw payload
// bytes, returning the payload and the original envelope size.
func DecodeOgg(op string, value []byte) (payload []byte, size int, err error) {
	return DecodeEnveloped(op, value)
}

// EncodeOgg encodes payload into a base64 Ogg comment value, padding to
// size bytes.
func EncodeOgg(payload []byte, size int) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := EncodeEnveloped(&buf, payload, size); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
