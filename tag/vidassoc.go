package tag

import (
	"bytes"
	"io"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// VidAssoc records an undocumented video association Serato attaches to a
// track. Everything past the version is preserved as an opaque tail rather
// than decoded further.
type VidAssoc struct {
	Version serato.Version
	Tail    []byte

	// envelopeSize is the original FLAC envelope length observed on parse,
	// so write reproduces trailing '\x00' padding. Zero means "constructed
	// directly, not parsed".
	envelopeSize int
}

func parseVidAssoc(op string, data []byte) (*VidAssoc, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	tail := make([]byte, r.Len())
	if _, err := io.ReadFull(r, tail); err != nil {
		return nil, serato.WrapParseError(op, err)
	}
	return &VidAssoc{Version: version, Tail: tail}, nil
}

func (v *VidAssoc) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, v.Version); err != nil {
		return nil, err
	}
	buf.Write(v.Tail)
	return buf.Bytes(), nil
}

// ParseVidAssocID3 parses an ID3 GEOB VidAssoc payload.
func ParseVidAssocID3(data []byte) (*VidAssoc, error) {
	return parseVidAssoc("tag.ParseVidAssocID3", data)
}

// WriteID3 serialises v to its ID3 GEOB payload form.
func (v *VidAssoc) WriteID3() ([]byte, error) { return v.encode() }

// ParseVidAssocFLAC parses a FLAC Vorbis comment VidAssoc value.
func ParseVidAssocFLAC(value []byte) (*VidAssoc, error) {
	const op = "tag.ParseVidAssocFLAC"
	payload, size, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	v, err := parseVidAssoc(op, payload)
	if err != nil {
		return nil, err
	}
	v.envelopeSize = size
	return v, nil
}

// WriteFLAC serialises v to its FLAC Vorbis comment value form.
func (v *VidAssoc) WriteFLAC() ([]byte, error) {
	payload, err := v.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(payload, v.envelopeSize)
}
