package tag

import (
	"bytes"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// relVolAdLiteralTail is the fixed three-byte tail every RelVolAd payload
// carries after its version.
var relVolAdLiteralTail = []byte{0x01, 0x00, 0x00}

// RelVolAd records Serato's relative-volume-adjustment tag. Beyond the
// version, the payload is a fixed literal the codec validates but does not
// otherwise interpret.
type RelVolAd struct {
	Version serato.Version

	// envelopeSize is the original FLAC envelope length observed on parse,
	// so write reproduces trailing '\x00' padding. Zero means "constructed
	// directly, not parsed".
	envelopeSize int
}

func parseRelVolAd(op string, data []byte) (*RelVolAd, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	if err := serato.ExpectBytes(r, op, relVolAdLiteralTail); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, serato.ParseErrorf(op, "%d unconsumed bytes after relvolad tail", r.Len())
	}
	return &RelVolAd{Version: version}, nil
}

func (rv *RelVolAd) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, rv.Version); err != nil {
		return nil, err
	}
	buf.Write(relVolAdLiteralTail)
	return buf.Bytes(), nil
}

// ParseRelVolAdFLAC parses a FLAC Vorbis comment RelVolAd value.
func ParseRelVolAdFLAC(value []byte) (*RelVolAd, error) {
	const op = "tag.ParseRelVolAdFLAC"
	payload, size, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	rv, err := parseRelVolAd(op, payload)
	if err != nil {
		return nil, err
	}
	rv.envelopeSize = size
	return rv, nil
}

// WriteFLAC serialises rv to its FLAC Vorbis comment value form.
func (rv *RelVolAd) WriteFLAC() ([]byte, error) {
	payload, err := rv.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(payload, rv.envelopeSize)
}

// ParseRelVolAdMP4 parses an MP4 freeform atom RelVolAd value.
func ParseRelVolAdMP4(value []byte) (*RelVolAd, error) {
	payload, err := format.DecodeMP4Raw(value)
	if err != nil {
		return nil, err
	}
	return parseRelVolAd("tag.ParseRelVolAdMP4", payload)
}

// WriteMP4 serialises rv to its MP4 freeform atom value form.
func (rv *RelVolAd) WriteMP4() ([]byte, error) {
	payload, err := rv.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Raw(payload)
}
