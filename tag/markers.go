package tag

import (
	"bytes"
	"io"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// Legacy Markers slot counts, per the widely documented legacy "Serato
// Markers_" layout: five cue slots, nine loop slots (see DESIGN.md).
const (
	legacyMarkersCueSlots = 5
	legacyMarkersLoopSlots = 9
)

const legacyMarkersPositionSentinel = 0x7F7F7F7F
const legacyMarkersNoEndSentinel = 0xFFFFFFFF

// Markers is the legacy "Serato Markers_" payload: a fixed-count array of
// cue slots and loop slots (inactive slots still occupy their full byte
// width so slot index and cue/loop index coincide), followed by a trailing
// track-color marker.
//
// Markers2 (markers2.go) supersedes most of this data and wins the merge
// for everything except cues/loops (container.go).
type Markers struct {
	Version serato.Version
	Cues    []Cue
	Loops   []Loop
	Color   serato.Color
}

func readMarkersSlotHeader(r io.Reader) (active bool, position uint32, endPosition uint32, err error) {
	activeByte, err := serato.ReadBool(r)
	if err != nil {
		return false, 0, 0, err
	}
	pos, err := readUint32(r)
	if err != nil {
		return false, 0, 0, err
	}
	end, err := readUint32(r)
	if err != nil {
		return false, 0, 0, err
	}
	return activeByte, pos, end, nil
}

func readMarkersColor(r io.Reader) (serato.Color, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return serato.Color{}, serato.WrapParseError("tag.readMarkersColor", err)
	}
	return serato.NewColor(buf[0], buf[1], buf[2]), nil
}

func writeMarkersColor(w io.Writer, c serato.Color) (int, error) {
	r, g, b := c.RGB()
	n, err := w.Write([]byte{r, g, b, 0x00})
	if err != nil {
		return n, serato.WrapIOError("tag.writeMarkersColor", err)
	}
	return n, nil
}

func parseMarkersCueSlot(r io.Reader, index uint8) (Cue, bool, error) {
	const op = "tag.parseMarkersCueSlot"
	active, pos, _, err := readMarkersSlotHeader(r)
	if err != nil {
		return Cue{}, false, err
	}
	color, err := readMarkersColor(r)
	if err != nil {
		return Cue{}, false, err
	}
	typeByte := make([]byte, 1)
	if _, err := io.ReadFull(r, typeByte); err != nil {
		return Cue{}, false, serato.WrapParseError(op, err)
	}
	lockedByte := make([]byte, 1)
	if _, err := io.ReadFull(r, lockedByte); err != nil {
		return Cue{}, false, serato.WrapParseError(op, err)
	}
	return Cue{Index: index, PositionMillis: pos, Color: color}, active, nil
}

func writeMarkersCueSlot(w io.Writer, cue *Cue, index uint8) error {
	active := cue != nil
	if _, err := serato.WriteBool(w, active); err != nil {
		return err
	}
	pos := uint32(legacyMarkersPositionSentinel)
	var color serato.Color
	if active {
		pos = cue.PositionMillis
		color = cue.Color
	}
	if _, err := writeUint32(w, pos); err != nil {
		return err
	}
	if _, err := writeUint32(w, legacyMarkersNoEndSentinel); err != nil {
		return err
	}
	if _, err := writeMarkersColor(w, color); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0x00, boolByte(active)}); err != nil {
		return serato.WrapIOError("tag.writeMarkersCueSlot", err)
	}
	return nil
}

func parseMarkersLoopSlot(r io.Reader, index uint8) (Loop, bool, error) {
	const op = "tag.parseMarkersLoopSlot"
	active, start, _, err := readMarkersSlotHeader(r)
	if err != nil {
		return Loop{}, false, err
	}
	color, err := readMarkersColor(r)
	if err != nil {
		return Loop{}, false, err
	}
	typeByte := make([]byte, 1)
	if _, err := io.ReadFull(r, typeByte); err != nil {
		return Loop{}, false, serato.WrapParseError(op, err)
	}
	locked, err := serato.ReadBool(r)
	if err != nil {
		return Loop{}, false, err
	}
	end, err := readUint32(r)
	if err != nil {
		return Loop{}, false, err
	}
	return Loop{Index: index, StartPositionMillis: start, EndPositionMillis: end, Color: color, IsLocked: locked}, active, nil
}

func writeMarkersLoopSlot(w io.Writer, loop *Loop, index uint8) error {
	active := loop != nil
	if _, err := serato.WriteBool(w, active); err != nil {
		return err
	}
	start := uint32(legacyMarkersPositionSentinel)
	var color serato.Color
	var locked bool
	end := uint32(legacyMarkersNoEndSentinel)
	if active {
		start = loop.StartPositionMillis
		color = loop.Color
		locked = loop.IsLocked
		end = loop.EndPositionMillis
	}
	if _, err := writeUint32(w, start); err != nil {
		return err
	}
	if _, err := writeUint32(w, legacyMarkersNoEndSentinel); err != nil {
		return err
	}
	if _, err := writeMarkersColor(w, color); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0x00}); err != nil {
		return serato.WrapIOError("tag.writeMarkersLoopSlot", err)
	}
	if _, err := serato.WriteBool(w, locked); err != nil {
		return err
	}
	if _, err := writeUint32(w, end); err != nil {
		return err
	}
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func parseMarkers(op string, data []byte) (*Markers, error) {
	r := bytes.NewReader(data)
	version, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	var cues []Cue
	for i := uint8(0); i < legacyMarkersCueSlots; i++ {
		cue, active, err := parseMarkersCueSlot(r, i)
		if err != nil {
			return nil, err
		}
		if active {
			cues = append(cues, cue)
		}
	}
	var loops []Loop
	for i := uint8(0); i < legacyMarkersLoopSlots; i++ {
		loop, active, err := parseMarkersLoopSlot(r, i)
		if err != nil {
			return nil, err
		}
		if active {
			loops = append(loops, loop)
		}
	}
	color, err := readMarkersColor(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, serato.ParseErrorf(op, "%d unconsumed bytes after trailing color", r.Len())
	}
	return &Markers{Version: version, Cues: cues, Loops: loops, Color: color}, nil
}

func cueAtIndex(cues []Cue, index uint8) *Cue {
	for i := range cues {
		if cues[i].Index == index {
			return &cues[i]
		}
	}
	return nil
}

func loopAtIndex(loops []Loop, index uint8) *Loop {
	for i := range loops {
		if loops[i].Index == index {
			return &loops[i]
		}
	}
	return nil
}

func (m *Markers) encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, m.Version); err != nil {
		return nil, err
	}
	for i := uint8(0); i < legacyMarkersCueSlots; i++ {
		if err := writeMarkersCueSlot(&buf, cueAtIndex(m.Cues, i), i); err != nil {
			return nil, err
		}
	}
	for i := uint8(0); i < legacyMarkersLoopSlots; i++ {
		if err := writeMarkersLoopSlot(&buf, loopAtIndex(m.Loops, i), i); err != nil {
			return nil, err
		}
	}
	if _, err := writeMarkersColor(&buf, m.Color); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseMarkersID3 parses an ID3 GEOB Markers payload.
func ParseMarkersID3(data []byte) (*Markers, error) {
	return parseMarkers("tag.ParseMarkersID3", data)
}

// WriteID3 serialises m to its ID3 GEOB payload form.
func (m *Markers) WriteID3() ([]byte, error) { return m.encode() }

// ParseMarkersMP4 parses an MP4 atom Markers value.
func ParseMarkersMP4(value []byte) (*Markers, error) {
	payload, err := format.DecodeMP4Raw(value)
	if err != nil {
		return nil, err
	}
	return parseMarkers("tag.ParseMarkersMP4", payload)
}

// WriteMP4 serialises m to its MP4 atom value form.
func (m *Markers) WriteMP4() ([]byte, error) {
	payload, err := m.encode()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Raw(payload)
}
