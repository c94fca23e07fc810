package tag

import (
	"bytes"
	"io"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// Overview holds Serato's waveform summary: a 2-D grid of rows whose width
// is never stated explicitly in the payload, only implied by the remaining
// byte count after the version and reserved byte. The row tail is preserved
// opaquely rather than sliced into guessed-width rows.
type Overview struct {
	Version serato.Version
	Rows    []byte

	// envelopeSize is the original FLAC envelope length observed on parse,
	// so write reproduces trailing '\x00' padding. Zero means "constructed
	// directly, not parsed".
	envelopeSize int
}

func parseOverview(op string, data []byte) (*Overview, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return nil, err
	}
	rows := make([]byte, r.Len())
	if _, err := io.ReadFull(r, rows); err != nil {
		return nil, serato.WrapParseError(op, err)
	}
	return &Overview{Version: version, Rows: rows}, nil
}

func (o *Overview) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, o.Version); err != nil {
		return nil, err
	}
	buf.WriteByte(0x00)
	buf.Write(o.Rows)
	return buf.Bytes(), nil
}

// ParseOverviewID3 parses an ID3 GEOB Overview payload.
func ParseOverviewID3(data []byte) (*Overview, error) {
	return parseOverview("tag.ParseOverviewID3", data)
}

// WriteID3 serialises o to its ID3 GEOB payload form.
func (o *Overview) WriteID3() ([]byte, error) { return o.encode() }

// ParseOverviewFLAC parses a FLAC Vorbis comment Overview value.
func ParseOverviewFLAC(value []byte) (*Overview, error) {
	const op = "tag.ParseOverviewFLAC"
	payload, size, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	o, err := parseOverview(op, payload)
	if err != nil {
		return nil, err
	}
	o.envelopeSize = size
	return o, nil
}

// WriteFLAC serialises o to its FLAC Vorbis comment value form.
func (o *Overview) WriteFLAC() ([]byte, error) {
	payload, err := o.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(payload, o.envelopeSize)
}

// ParseOverviewMP4 parses an MP4 freeform atom Overview value.
func ParseOverviewMP4(value []byte) (*Overview, error) {
	payload, err := format.DecodeMP4Raw(value)
	if err != nil {
		return nil, err
	}
	return parseOverview("tag.ParseOverviewMP4", payload)
}

// WriteMP4 serialises o to its MP4 freeform atom value form.
func (o *Overview) WriteMP4() ([]byte, error) {
	payload, err := o.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Raw(payload)
}
