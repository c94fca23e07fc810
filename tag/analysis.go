package tag

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag/format"
)

// Analysis records the Serato analysis format version stamped onto a track
// the first time Serato analyses it.
type Analysis struct {
	Version serato.Version

	// envelopeSize is the original FLAC envelope length observed on parse,
	// so write reproduces trailing '\x00' padding. Zero means "constructed
	// directly, not parsed": write falls back to the natural (unpadded)
	// length.
	envelopeSize int
}

// ParseAnalysisID3 parses an ID3 GEOB Analysis payload.
func ParseAnalysisID3(data []byte) (*Analysis, error) {
	return parseAnalysis("tag.ParseAnalysisID3", data)
}

// WriteID3 serialises a to its ID3 GEOB payload form.
func (a *Analysis) WriteID3() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := serato.WriteVersion(&buf, a.Version); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseAnalysisFLAC parses a FLAC Vorbis comment Analysis value.
func ParseAnalysisFLAC(value []byte) (*Analysis, error) {
	const op = "tag.ParseAnalysisFLAC"
	payload, size, err := format.DecodeFLAC(op, value)
	if err != nil {
		return nil, err
	}
	a, err := parseAnalysis(op, payload)
	if err != nil {
		return nil, err
	}
	a.envelopeSize = size
	return a, nil
}

// WriteFLAC serialises a to its FLAC Vorbis comment value form.
func (a *Analysis) WriteFLAC() ([]byte, error) {
	payload, err := a.WriteID3()
	if err != nil {
		return nil, err
	}
	return format.EncodeFLAC(payload, a.envelopeSize)
}

// ParseAnalysisMP4 parses an MP4 freeform atom Analysis value.
func ParseAnalysisMP4(value []byte) (*Analysis, error) {
	payload, err := format.DecodeMP4Raw(value)
	if err != nil {
		return nil, err
	}
	return parseAnalysis("tag.ParseAnalysisMP4", payload)
}

// WriteMP4 serialises a to its MP4 freeform atom value form.
func (a *Analysis) WriteMP4() ([]byte, error) {
	payload, err := a.WriteID3()
	if err != nil {
		return nil, err
	}
	return format.EncodeMP4Raw(payload)
}

// ParseAnalysisOgg parses an Ogg comment Analysis value: the ASCII string
// "<major>.<minor>" rather than two raw version bytes.
func ParseAnalysisOgg(value []byte) (*Analysis, error) {
	const op = "tag.ParseAnalysisOgg"
	s := string(value)
	major, minor, ok := splitVersionString(s)
	if !ok {
		return nil, serato.ParseErrorf(op, "malformed ogg analysis version %q", s)
	}
	return &Analysis{Version: serato.Version{Major: major, Minor: minor}}, nil
}

// WriteOgg serialises a to its Ogg comment ASCII "<major>.<minor>" form.
func (a *Analysis) WriteOgg() ([]byte, error) {
	return []byte(fmt.Sprintf("%d.%d", a.Version.Major, a.Version.Minor)), nil
}

func parseAnalysis(op string, data []byte) (*Analysis, error) {
	r := bytes.NewReader(data)
	v, err := serato.ReadVersion(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, serato.ParseErrorf(op, "%d unconsumed bytes after version", r.Len())
	}
	return &Analysis{Version: v}, nil
}

func splitVersionString(s string) (major, minor uint8, ok bool) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	maj, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, 0, false
	}
	min, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return 0, 0, false
	}
	return uint8(maj), uint8(min), true
}
