package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag"
	"github.com/mewkiz/serato/tag/format"
)

func encodeOggMarkers2(t *testing.T, inner []byte) []byte {
	t.Helper()
	value, err := format.EncodeOgg(inner, 0)
	require.NoError(t, err)
	return value
}

// Markers2 inner payload
// 01 01 "BPMLOCK\0" 00 00 00 01 01 -> [BPMLock{is_locked:true}].
func TestMarkers2BPMLockConcreteScenario(t *testing.T) {
	inner := []byte{
		0x01, 0x01, // version
		'B', 'P', 'M', 'L', 'O', 'C', 'K', 0x00, // name
		0x00, 0x00, 0x00, 0x01, // length = 1
		0x01, // body: locked = true
	}
	value := encodeOggMarkers2(t, inner)

	m, err := tag.ParseMarkers2Ogg(value)
	require.NoError(t, err)
	require.NotNil(t, m.Content.BPMLocked)
	assert.True(t, *m.Content.BPMLocked)
}

// Markers2 CUE body
// 00 02 00 00 7A 12 00 CC 00 00 00 00 "HOOK\0" ->
// Cue{index:2, position_millis:0x7A12, color: decode(CC,00,00), label:"HOOK"}.
func TestMarkers2CueConcreteScenario(t *testing.T) {
	cueBody := []byte{
		0x00,             // reserved
		0x02,             // index
		0x00, 0x00, 0x7A, 0x12, // position_millis = 0x7A12
		0x00,             // reserved
		0xCC, 0x00, 0x00, // color
		0x00, 0x00, // reserved
		'H', 'O', 'O', 'K', 0x00, // label
	}
	inner := []byte{0x01, 0x01} // version
	inner = append(inner, 'C', 'U', 'E', 0x00)
	inner = append(inner, 0x00, 0x00, 0x00, byte(len(cueBody)))
	inner = append(inner, cueBody...)

	value := encodeOggMarkers2(t, inner)
	m, err := tag.ParseMarkers2Ogg(value)
	require.NoError(t, err)
	require.Len(t, m.Content.Cues, 1)
	cue := m.Content.Cues[0]
	assert.Equal(t, uint8(2), cue.Index)
	assert.Equal(t, uint32(0x7A12), cue.PositionMillis)
	assert.Equal(t, serato.NewColor(0xCC, 0x00, 0x00), cue.Color)
	assert.Equal(t, "HOOK", cue.Label)
}

func TestMarkers2UnknownMarkerPreservation(t *testing.T) {
	inner := []byte{0x01, 0x01}
	inner = append(inner, 'W', 'E', 'I', 'R', 'D', 0x00)
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}
	inner = append(inner, 0x00, 0x00, 0x00, byte(len(body)))
	inner = append(inner, body...)

	value := encodeOggMarkers2(t, inner)
	m, err := tag.ParseMarkers2Ogg(value)
	require.NoError(t, err)
	require.Len(t, m.Content.Unknown, 1)
	assert.Equal(t, "WEIRD", m.Content.Unknown[0].Name)
	assert.Equal(t, body, m.Content.Unknown[0].Data)

	out, err := m.WriteOgg()
	require.NoError(t, err)
	assert.Equal(t, value, out)
}

// An unrecognised flip action id (outside {0,1}) with arbitrary payload
// round-trips byte-identically rather than failing to parse.
func TestMarkers2FlipActionPreservation(t *testing.T) {
	flip := tag.Flip{
		Index:     0,
		IsEnabled: true,
		Label:     "edit",
		IsLoop:    false,
		Actions: []tag.FlipAction{
			{Kind: tag.FlipActionJump, SourceSeconds: 1.5, TargetSeconds: 4.25},
			{Kind: tag.FlipActionUnknown, UnknownID: 7, UnknownData: []byte{0x01, 0x02, 0x03}},
		},
	}
	m := &tag.Markers2{
		Content: tag.Markers2Content{
			Version: serato.Version{Major: 1, Minor: 1},
			Flips:   []tag.Flip{flip},
		},
	}

	value, err := m.WriteOgg()
	require.NoError(t, err)

	got, err := tag.ParseMarkers2Ogg(value)
	require.NoError(t, err)
	require.Len(t, got.Content.Flips, 1)
	assert.Equal(t, flip, got.Content.Flips[0])

	// Round-tripping the already-parsed value must reproduce the exact
	// same bytes.
	out, err := got.WriteOgg()
	require.NoError(t, err)
	assert.Equal(t, value, out)
}
