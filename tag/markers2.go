package tag

import (
	"bytes"
	"io"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// Marker names, as written null-terminated ASCII inside a Markers2 inner
// payload. Any other name round-trips as an unknownMarker.
const (
	markerNameBPMLock = "BPMLOCK"
	markerNameColor   = "COLOR"
	markerNameCue     = "CUE"
	markerNameLoop    = "LOOP"
	markerNameFlip    = "FLIP"
)

// unknownMarker preserves a marker this codec does not recognise, by name
// and raw payload bytes, so that a round-trip does not drop data.
type unknownMarker struct {
	Name string
	Data []byte
}

// Markers2Content is the inner, decoded structure of a Markers2 payload:
// a version followed by the ordered sequence of markers. Unlike Markers
// (legacy), markers are a sparse list rather than fixed slots. This codec
// buckets them into one field per kind and separately records the order
// they were parsed in, so that write reproduces that order.
type Markers2Content struct {
	Version   serato.Version
	BPMLocked *bool
	Color     *serato.Color
	Cues      []Cue
	Loops     []Loop
	Flips     []Flip
	Unknown   []unknownMarker

	// order records, for each marker parsed, which field it landed in and
	// (for slice fields) at what index — so write can reproduce the
	// original marker order exactly, a prerequisite for the round-trip
	// property when more than one marker kind is present.
	order []markerSlot
}

type markerKind int

const (
	markerKindBPMLock markerKind = iota
	markerKindColor
	markerKindCue
	markerKindLoop
	markerKindFlip
	markerKindUnknown
)

type markerSlot struct {
	kind markerKind
	idx  int
}

// Markers2 is the Markers2 tag as carried by an envelope: the outer
// version, the inner content, and (for FLAC/MP4-freeform) the original
// enveloped size so that padding round-trips.
type Markers2 struct {
	// OuterVersion is the version byte pair preceding the chunked-base64
	// body. The Ogg envelope has none (its parse/write path skips straight
	// to the inner content), in which case this is the zero Version and is
	// not written.
	OuterVersion serato.Version
	Content      Markers2Content

	// size is the byte length of the inner chunked-base64-wrapped layer
	// (version + enveloped inner content) observed on parse: the layer that
	// ID3, FLAC and MP4 carry. The Ogg path has no such layer and leaves it
	// zero. Zero means "constructed by the caller, not parsed" and write
	// falls back to the natural (unpadded) length.
	size int

	// outerEnvelopeSize is the byte length of the FLAC/MP4-freeform/Ogg
	// base64 envelope itself, observed on parse. Unused for ID3, which has
	// no outer envelope of its own.
	outerEnvelopeSize int
}

// parseMarkers2Content parses the inner version+marker-sequence structure
// shared by every envelope.
func parseMarkers2Content(op string, data []byte) (Markers2Content, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return Markers2Content{}, err
	}
	content := Markers2Content{Version: version}
	for r.Len() > 0 {
		name, err := serato.ReadNullString(r)
		if err != nil {
			return Markers2Content{}, err
		}
		body, err := readLengthPrefixed(r)
		if err != nil {
			return Markers2Content{}, err
		}
		if err := content.addMarker(op, name, body); err != nil {
			return Markers2Content{}, err
		}
	}
	return content, nil
}

func (c *Markers2Content) addMarker(op string, name string, body []byte) error {
	br := bytes.NewReader(body)
	switch name {
	case markerNameBPMLock:
		locked, err := serato.ReadBool(br)
		if err != nil {
			return err
		}
		if br.Len() != 0 {
			return serato.ParseErrorf(op, "BPMLOCK: %d unconsumed bytes", br.Len())
		}
		c.BPMLocked = &locked
		c.order = append(c.order, markerSlot{kind: markerKindBPMLock})
		return nil
	case markerNameColor:
		if err := serato.ExpectBytes(br, op, []byte{0x00}); err != nil {
			return err
		}
		color, err := serato.ReadColor(br)
		if err != nil {
			return err
		}
		if br.Len() != 0 {
			return serato.ParseErrorf(op, "COLOR: %d unconsumed bytes", br.Len())
		}
		c.Color = &color
		c.order = append(c.order, markerSlot{kind: markerKindColor})
		return nil
	case markerNameCue:
		cue, err := parseCueMarker(op, br)
		if err != nil {
			return err
		}
		if br.Len() != 0 {
			return serato.ParseErrorf(op, "CUE: %d unconsumed bytes", br.Len())
		}
		c.order = append(c.order, markerSlot{kind: markerKindCue, idx: len(c.Cues)})
		c.Cues = append(c.Cues, cue)
		return nil
	case markerNameLoop:
		loop, err := parseLoopMarker(op, br)
		if err != nil {
			return err
		}
		if br.Len() != 0 {
			return serato.ParseErrorf(op, "LOOP: %d unconsumed bytes", br.Len())
		}
		c.order = append(c.order, markerSlot{kind: markerKindLoop, idx: len(c.Loops)})
		c.Loops = append(c.Loops, loop)
		return nil
	case markerNameFlip:
		flip, err := parseFlipMarker(op, br)
		if err != nil {
			return err
		}
		if br.Len() != 0 {
			return serato.ParseErrorf(op, "FLIP: %d unconsumed bytes", br.Len())
		}
		c.order = append(c.order, markerSlot{kind: markerKindFlip, idx: len(c.Flips)})
		c.Flips = append(c.Flips, flip)
		return nil
	default:
		c.order = append(c.order, markerSlot{kind: markerKindUnknown, idx: len(c.Unknown)})
		c.Unknown = append(c.Unknown, unknownMarker{Name: name, Data: body})
		return nil
	}
}

func parseCueMarker(op string, r io.Reader) (Cue, error) {
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return Cue{}, err
	}
	indexBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, indexBuf); err != nil {
		return Cue{}, serato.WrapParseError(op, err)
	}
	position, err := readUint32(r)
	if err != nil {
		return Cue{}, err
	}
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return Cue{}, err
	}
	color, err := serato.ReadColor(r)
	if err != nil {
		return Cue{}, err
	}
	if err := serato.ExpectBytes(r, op, []byte{0x00, 0x00}); err != nil {
		return Cue{}, err
	}
	label, err := serato.ReadNullString(r)
	if err != nil {
		return Cue{}, err
	}
	return Cue{Index: indexBuf[0], PositionMillis: position, Color: color, Label: label}, nil
}

func writeCueMarker(cue Cue) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(0x00)
	buf.WriteByte(cue.Index)
	if _, err := writeUint32(&buf, cue.PositionMillis); err != nil {
		return nil, err
	}
	buf.WriteByte(0x00)
	if _, err := serato.WriteColor(&buf, cue.Color); err != nil {
		return nil, err
	}
	buf.Write([]byte{0x00, 0x00})
	if _, err := serato.WriteNullString(&buf, cue.Label); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseLoopMarker(op string, r io.Reader) (Loop, error) {
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return Loop{}, err
	}
	indexBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, indexBuf); err != nil {
		return Loop{}, serato.WrapParseError(op, err)
	}
	start, err := readUint32(r)
	if err != nil {
		return Loop{}, err
	}
	end, err := readUint32(r)
	if err != nil {
		return Loop{}, err
	}
	if err := serato.ExpectBytes(r, op, []byte{0xFF, 0xFF, 0xFF, 0xFF}); err != nil {
		return Loop{}, err
	}
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return Loop{}, err
	}
	color, err := serato.ReadColor(r)
	if err != nil {
		return Loop{}, err
	}
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return Loop{}, err
	}
	locked, err := serato.ReadBool(r)
	if err != nil {
		return Loop{}, err
	}
	label, err := serato.ReadNullString(r)
	if err != nil {
		return Loop{}, err
	}
	return Loop{Index: indexBuf[0], StartPositionMillis: start, EndPositionMillis: end, Color: color, IsLocked: locked, Label: label}, nil
}

func writeLoopMarker(loop Loop) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(0x00)
	buf.WriteByte(loop.Index)
	if _, err := writeUint32(&buf, loop.StartPositionMillis); err != nil {
		return nil, err
	}
	if _, err := writeUint32(&buf, loop.EndPositionMillis); err != nil {
		return nil, err
	}
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	buf.WriteByte(0x00)
	if _, err := serato.WriteColor(&buf, loop.Color); err != nil {
		return nil, err
	}
	buf.WriteByte(0x00)
	if _, err := serato.WriteBool(&buf, loop.IsLocked); err != nil {
		return nil, err
	}
	if _, err := serato.WriteNullString(&buf, loop.Label); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseFlipMarker(op string, r io.Reader) (Flip, error) {
	if err := serato.ExpectBytes(r, op, []byte{0x00}); err != nil {
		return Flip{}, err
	}
	indexBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, indexBuf); err != nil {
		return Flip{}, serato.WrapParseError(op, err)
	}
	enabled, err := serato.ReadBool(r)
	if err != nil {
		return Flip{}, err
	}
	label, err := serato.ReadNullString(r)
	if err != nil {
		return Flip{}, err
	}
	isLoop, err := serato.ReadBool(r)
	if err != nil {
		return Flip{}, err
	}
	count, err := readUint32(r)
	if err != nil {
		return Flip{}, err
	}
	actions := make([]FlipAction, 0, count)
	for i := uint32(0); i < count; i++ {
		action, err := readFlipAction(r)
		if err != nil {
			return Flip{}, err
		}
		actions = append(actions, action)
	}
	return Flip{Index: indexBuf[0], IsEnabled: enabled, Label: label, IsLoop: isLoop, Actions: actions}, nil
}

// writeFlipMarker serialises flip to a FLIP marker body. A per-action
// byte-count accumulator is never maintained manually here — bytes.Buffer
// tracks its own length, so there is no running total to get wrong.
func writeFlipMarker(flip Flip) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(0x00)
	buf.WriteByte(flip.Index)
	if _, err := serato.WriteBool(&buf, flip.IsEnabled); err != nil {
		return nil, err
	}
	if _, err := serato.WriteNullString(&buf, flip.Label); err != nil {
		return nil, err
	}
	if _, err := serato.WriteBool(&buf, flip.IsLoop); err != nil {
		return nil, err
	}
	if _, err := writeUint32(&buf, uint32(len(flip.Actions))); err != nil {
		return nil, err
	}
	for _, action := range flip.Actions {
		if _, err := writeFlipAction(&buf, action); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writeMarker(name string, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteNullString(&buf, name); err != nil {
		return nil, err
	}
	if _, err := writeUint32(&buf, uint32(len(body))); err != nil {
		return nil, err
	}
	buf.Write(body)
	return buf.Bytes(), nil
}

// effectiveOrder returns c.order if it records one, or else synthesizes a
// default marker order from whichever fields are populated — the shape a
// value built directly by a caller (rather than produced by parsing) will
// be in, since order is only populated by parseMarkers2Content.
func (c *Markers2Content) effectiveOrder() []markerSlot {
	if len(c.order) > 0 {
		return c.order
	}
	var order []markerSlot
	if c.BPMLocked != nil {
		order = append(order, markerSlot{kind: markerKindBPMLock})
	}
	if c.Color != nil {
		order = append(order, markerSlot{kind: markerKindColor})
	}
	for i := range c.Cues {
		order = append(order, markerSlot{kind: markerKindCue, idx: i})
	}
	for i := range c.Loops {
		order = append(order, markerSlot{kind: markerKindLoop, idx: i})
	}
	for i := range c.Flips {
		order = append(order, markerSlot{kind: markerKindFlip, idx: i})
	}
	for i := range c.Unknown {
		order = append(order, markerSlot{kind: markerKindUnknown, idx: i})
	}
	return order
}

// encode serialises content (version + ordered markers) to its inner-payload
// byte form.
func (c *Markers2Content) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, c.Version); err != nil {
		return nil, err
	}
	for _, slot := range c.effectiveOrder() {
		var name string
		var body []byte
		var err error
		switch slot.kind {
		case markerKindBPMLock:
			name = markerNameBPMLock
			locked := false
			if c.BPMLocked != nil {
				locked = *c.BPMLocked
			}
			body = []byte{boolByte(locked)}
		case markerKindColor:
			name = markerNameColor
			var bodyBuf bytes.Buffer
			bodyBuf.WriteByte(0x00)
			var color serato.Color
			if c.Color != nil {
				color = *c.Color
			}
			if _, err = serato.WriteColor(&bodyBuf, color); err != nil {
				return nil, err
			}
			body = bodyBuf.Bytes()
		case markerKindCue:
			name = markerNameCue
			body, err = writeCueMarker(c.Cues[slot.idx])
		case markerKindLoop:
			name = markerNameLoop
			body, err = writeLoopMarker(c.Loops[slot.idx])
		case markerKindFlip:
			name = markerNameFlip
			body, err = writeFlipMarker(c.Flips[slot.idx])
		case markerKindUnknown:
			name = c.Unknown[slot.idx].Name
			body = c.Unknown[slot.idx].Data
		}
		if err != nil {
			return nil, err
		}
		marker, err := writeMarker(name, body)
		if err != nil {
			return nil, err
		}
		buf.Write(marker)
	}
	return buf.Bytes(), nil
}

// ParseMarkers2ID3 parses an ID3 GEOB Markers2 payload: a single layer,
// version followed directly by the chunked-base64-wrapped inner content.
func ParseMarkers2ID3(data []byte) (*Markers2, error) {
	const op = "tag.ParseMarkers2ID3"
	return parseMarkers2Outer(op, data)
}

// WriteID3 serialises m to its ID3 GEOB payload form.
func (m *Markers2) WriteID3() ([]byte, error) {
	return m.encodeOuter()
}

func parseMarkers2Outer(op string, data []byte) (*Markers2, error) {
	r := bytes.NewReader(data)
	outerVersion, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	rest := make([]byte, r.Len())
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, serato.WrapParseError(op, err)
	}
	inner, size, err := format.DecodeEnveloped(op, rest)
	if err != nil {
		return nil, err
	}
	content, err := parseMarkers2Content(op, inner)
	if err != nil {
		return nil, err
	}
	return &Markers2{OuterVersion: outerVersion, Content: content, size: size + 2}, nil
}

func (m *Markers2) encodeOuter() ([]byte, error) {
	inner, err := m.Content.encode()
	if err != nil {
		return nil, err
	}
	innerSize := m.size - 2
	if innerSize < 0 {
		innerSize = 0
	}
	var enveloped bytes.Buffer
	if _, err := format.EncodeEnveloped(&enveloped, inner, innerSize); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, m.OuterVersion); err != nil {
		return nil, err
	}
	buf.Write(enveloped.Bytes())
	return buf.Bytes(), nil
}

// ParseMarkers2FLAC parses a FLAC Vorbis comment Markers2 value: an outer
// enveloped-base64 layer wrapping the entire version+chunked-inner
// structure that ID3 carries directly.
func ParseMarkers2FLAC(value []byte) (*Markers2, error) {
	const op = "tag.ParseMarkers2FLAC"
	outerPayload, outerSize, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	m, err := parseMarkers2Outer(op, outerPayload)
	if err != nil {
		return nil, err
	}
	m.outerEnvelopeSize = outerSize
	return m, nil
}

// WriteFLAC serialises m to its FLAC Vorbis comment value form.
func (m *Markers2) WriteFLAC() ([]byte, error) {
	outerPayload, err := m.encodeOuter()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(outerPayload, m.outerEnvelopeSize)
}

// ParseMarkers2MP4 parses an MP4 freeform "markersv2" atom Markers2 value,
// which uses the same double-enveloped layering as FLAC.
func ParseMarkers2MP4(value []byte) (*Markers2, error) {
	const op = "tag.ParseMarkers2MP4"
	outerPayload, outerSize, err := format.DecodeMP4Freeform(op, value)
	if err != nil {
		return nil, err
	}
	m, err := parseMarkers2Outer(op, outerPayload)
	if err != nil {
		return nil, err
	}
	m.outerEnvelopeSize = outerSize
	return m, nil
}

// WriteMP4 serialises m to its MP4 freeform atom value form.
func (m *Markers2) WriteMP4() ([]byte, error) {
	outerPayload, err := m.encodeOuter()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Freeform(outerPayload, m.outerEnvelopeSize)
}

// ParseMarkers2Ogg parses an Ogg comment Markers2 value. Ogg skips the
// outer version+chunked-inner structure entirely: the enveloped-base64
// layer here unwraps directly to the inner version+marker-sequence
// content, and the outer version is left unset.
func ParseMarkers2Ogg(value []byte) (*Markers2, error) {
	const op = "tag.ParseMarkers2Ogg"
	payload, size, err := format.DecodeOgg(op, value)
	if err != nil {
		return nil, err
	}
	content, err := parseMarkers2Content(op, payload)
	if err != nil {
		return nil, err
	}
	return &Markers2{Content: content, outerEnvelopeSize: size}, nil
}

// WriteOgg serialises m to its Ogg comment value form.
func (m *Markers2) WriteOgg() ([]byte, error) {
	inner, err := m.Content.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeOgg(inner, m.outerEnvelopeSize)
}
