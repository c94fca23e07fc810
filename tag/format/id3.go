package format

// ID3 GEOB frames hold the Serato payload directly: by the time a caller
// has stripped the GEOB envelope (1-byte encoding, then null-terminated
// mime-type/filename/content-description — the host library's job), what
// remains is exactly the tag's raw payload bytes.
//
// DecodeID3 and EncodeID3 are therefore pass-throughs; they exist so every
// tag kind can expose a uniform parse_id3/write_id3 pair even though ID3
// itself adds no framing of its own.

// DecodeID3 returns data unchanged.
func DecodeID3(data []byte) ([]byte, error) {
	return data, nil
}

// EncodeID3 returns payload unchanged.
func EncodeID3(payload []byte) ([]byte, error) {
	return payload, nil
}
