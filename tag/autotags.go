package tag

import (
	"bytes"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// Autotags records Serato's automatic gain/BPM analysis of a track.
//
// BPM's exact bytes are preserved rather than reformatted on write: nothing
// here enforces a decimal precision, so re-emitting a freshly formatted
// float risks a non-round-trip-safe change to text that carries no numeric
// ambiguity but is nonetheless part of the byte contract.
type Autotags struct {
	Version  serato.Version
	AutoGain string
	GainDB   string
	BPM      string

	// envelopeSize is the original FLAC/Ogg envelope length observed on
	// parse, so write reproduces trailing '\x00' padding. Zero means
	// "constructed directly, not parsed".
	envelopeSize int
}

func parseAutotags(op string, data []byte) (*Autotags, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	autoGain, err := serato.ReadNullString(r)
	if err != nil {
		return nil, err
	}
	gainDB, err := serato.ReadNullString(r)
	if err != nil {
		return nil, err
	}
	bpm, err := serato.ReadNullString(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, serato.ParseErrorf(op, "%d unconsumed bytes after autotags fields", r.Len())
	}
	return &Autotags{Version: version, AutoGain: autoGain, GainDB: gainDB, BPM: bpm}, nil
}

func (a *Autotags) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, a.Version); err != nil {
		return nil, err
	}
	if _, err := serato.WriteNullString(&buf, a.AutoGain); err != nil {
		return nil, err
	}
	if _, err := serato.WriteNullString(&buf, a.GainDB); err != nil {
		return nil, err
	}
	if _, err := serato.WriteNullString(&buf, a.BPM); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseAutotagsID3 parses an ID3 GEOB Autotags payload.
func ParseAutotagsID3(data []byte) (*Autotags, error) {
	return parseAutotags("tag.ParseAutotagsID3", data)
}

// WriteID3 serialises a to its ID3 GEOB payload form.
func (a *Autotags) WriteID3() ([]byte, error) { return a.encode() }

// ParseAutotagsFLAC parses a FLAC Vorbis comment Autotags value.
func ParseAutotagsFLAC(value []byte) (*Autotags, error) {
	const op = "tag.ParseAutotagsFLAC"
	payload, size, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	a, err := parseAutotags(op, payload)
	if err != nil {
		return nil, err
	}
	a.envelopeSize = size
	return a, nil
}

// WriteFLAC serialises a to its FLAC Vorbis comment value form.
func (a *Autotags) WriteFLAC() ([]byte, error) {
	payload, err := a.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(payload, a.envelopeSize)
}

// ParseAutotagsMP4 parses an MP4 freeform atom Autotags value.
func ParseAutotagsMP4(value []byte) (*Autotags, error) {
	payload, err := format.DecodeMP4Raw(value)
	if err != nil {
		return nil, err
	}
	return parseAutotags("tag.ParseAutotagsMP4", payload)
}

// WriteMP4 serialises a to its MP4 freeform atom value form.
func (a *Autotags) WriteMP4() ([]byte, error) {
	payload, err := a.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Raw(payload)
}

// ParseAutotagsOgg parses an Ogg comment Autotags value.
func ParseAutotagsOgg(value []byte) (*Autotags, error) {
	const op = "tag.ParseAutotagsOgg"
	payload, size, err := format.DecodeOgg(op, value)
	if err != nil {
		return nil, err
	}
	a, err := parseAutotags(op, payload)
	if err != nil {
		return nil, err
	}
	a.envelopeSize = size
	return a, nil
}

// WriteOgg serialises a to its Ogg comment value form.
func (a *Autotags) WriteOgg() ([]byte, error) {
	payload, err := a.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeOgg(payload, a.envelopeSize)
}
