package tag

import (
	"bytes"
	"io"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// BeatgridMarker is one non-terminal beatgrid marker: a track position in
// seconds and the number of beats until the next marker.
type BeatgridMarker struct {
	PositionSeconds      float32
	BeatsTillNextMarker  uint32
}

// BeatgridTerminalMarker is the final beatgrid marker: a track position in
// seconds and the grid's BPM from that point on.
type BeatgridTerminalMarker struct {
	PositionSeconds float32
	BPM             float32
}

// Beatgrid records the beat grid Serato has fit to a track.
type Beatgrid struct {
	Version  serato.Version
	Markers  []BeatgridMarker
	Terminal BeatgridTerminalMarker
	Footer   byte

	// envelopeSize is the original FLAC/Ogg envelope length observed on
	// parse, so write reproduces trailing '\x00' padding. Zero means
	// "constructed directly, not parsed".
	envelopeSize int
}

func parseBeatgrid(op string, data []byte) (*Beatgrid, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	count, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	markers := make([]BeatgridMarker, 0, count)
	for i := uint32(0); i < count; i++ {
		pos, err := readFloat32(r)
		if err != nil {
			return nil, err
		}
		beats, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		markers = append(markers, BeatgridMarker{PositionSeconds: pos, BeatsTillNextMarker: beats})
	}
	termPos, err := readFloat32(r)
	if err != nil {
		return nil, err
	}
	termBPM, err := readFloat32(r)
	if err != nil {
		return nil, err
	}
	footerBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, footerBuf); err != nil {
		return nil, serato.WrapParseError(op, err)
	}
	if r.Len() != 0 {
		return nil, serato.ParseErrorf(op, "%d unconsumed bytes after beatgrid footer", r.Len())
	}
	return &Beatgrid{
		Version:  version,
		Markers:  markers,
		Terminal: BeatgridTerminalMarker{PositionSeconds: termPos, BPM: termBPM},
		Footer:   footerBuf[0],
	}, nil
}

func (b *Beatgrid) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, b.Version); err != nil {
		return nil, err
	}
	if _, err := writeUint32(&buf, uint32(len(b.Markers))); err != nil {
		return nil, err
	}
	for _, m := range b.Markers {
		if _, err := writeFloat32(&buf, m.PositionSeconds); err != nil {
			return nil, err
		}
		if _, err := writeUint32(&buf, m.BeatsTillNextMarker); err != nil {
			return nil, err
		}
	}
	if _, err := writeFloat32(&buf, b.Terminal.PositionSeconds); err != nil {
		return nil, err
	}
	if _, err := writeFloat32(&buf, b.Terminal.BPM); err != nil {
		return nil, err
	}
	buf.WriteByte(b.Footer)
	return buf.Bytes(), nil
}

// ParseBeatgridID3 parses an ID3 GEOB Beatgrid payload.
func ParseBeatgridID3(data []byte) (*Beatgrid, error) {
	return parseBeatgrid("tag.ParseBeatgridID3", data)
}

// WriteID3 serialises b to its ID3 GEOB payload form.
func (b *Beatgrid) WriteID3() ([]byte, error) { return b.encode() }

// ParseBeatgridFLAC parses a FLAC Vorbis comment Beatgrid value.
func ParseBeatgridFLAC(value []byte) (*Beatgrid, error) {
	const op = "tag.ParseBeatgridFLAC"
	payload, size, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	b, err := parseBeatgrid(op, payload)
	if err != nil {
		return nil, err
	}
	b.envelopeSize = size
	return b, nil
}

// WriteFLAC serialises b to its FLAC Vorbis comment value form.
func (b *Beatgrid) WriteFLAC() ([]byte, error) {
	payload, err := b.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(payload, b.envelopeSize)
}

// ParseBeatgridMP4 parses an MP4 freeform atom Beatgrid value.
func ParseBeatgridMP4(value []byte) (*Beatgrid, error) {
	payload, err := format.DecodeMP4Raw(value)
	if err != nil {
		return nil, err
	}
	return parseBeatgrid("tag.ParseBeatgridMP4", payload)
}

// WriteMP4 serialises b to its MP4 freeform atom value form.
func (b *Beatgrid) WriteMP4() ([]byte, error) {
	payload, err := b.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Raw(payload)
}

// ParseBeatgridOgg parses an Ogg comment Beatgrid value.
func ParseBeatgridOgg(value []byte) (*Beatgrid, error) {
	const op = "tag.ParseBeatgridOgg"
	payload, size, err := format.DecodeOgg(op, value)
	if err != nil {
		return nil, err
	}
	b, err := parseBeatgrid(op, payload)
	if err != nil {
		return nil, err
	}
	b.envelopeSize = size
	return b, nil
}

// WriteOgg serialises b to its Ogg comment value form.
func (b *Beatgrid) WriteOgg() ([]byte, error) {
	payload, err := b.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeOgg(payload, b.envelopeSize)
}
