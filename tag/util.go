package tag

import (
	"encoding/binary"
	"io"

	"github.com/mewkiz/serato"
)

func readUint32(r io.Reader) (uint32, error) {
	const op = "tag.readUint32"
	var v uint32
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, serato.WrapParseError(op, err)
	}
	return v, nil
}

func writeUint32(w io.Writer, v uint32) (int, error) {
	const op = "tag.writeUint32"
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return 0, serato.WrapIOError(op, err)
	}
	return 4, nil
}

func readFloat32(r io.Reader) (float32, error) {
	const op = "tag.readFloat32"
	var v float32
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, serato.WrapParseError(op, err)
	}
	return v, nil
}

func writeFloat32(w io.Writer, v float32) (int, error) {
	const op = "tag.writeFloat32"
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return 0, serato.WrapIOError(op, err)
	}
	return 4, nil
}

func readFloat64(r io.Reader) (float64, error) {
	const op = "tag.readFloat64"
	var v float64
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, serato.WrapParseError(op, err)
	}
	return v, nil
}

func writeFloat64(w io.Writer, v float64) (int, error) {
	const op = "tag.writeFloat64"
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return 0, serato.WrapIOError(op, err)
	}
	return 8, nil
}

// readLengthPrefixed reads a u32 BE byte count followed by that many bytes,
// the shape used throughout Markers2 for markers and flip actions.
func readLengthPrefixed(r io.Reader) ([]byte, error) {
	const op = "tag.readLengthPrefixed"
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, serato.WrapParseError(op, err)
	}
	return buf, nil
}
