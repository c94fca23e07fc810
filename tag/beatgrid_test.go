package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag"
)

func TestBeatgridRoundTrip(t *testing.T) {
	b := &tag.Beatgrid{
		Version: serato.Version{Major: 1, Minor: 0},
		Markers: []tag.BeatgridMarker{
			{PositionSeconds: 0.5, BeatsTillNextMarker: 4},
			{PositionSeconds: 2.75, BeatsTillNextMarker: 8},
		},
		Terminal: tag.BeatgridTerminalMarker{PositionSeconds: 10.25, BPM: 128},
		Footer:   0x7F,
	}

	value, err := b.WriteID3()
	require.NoError(t, err)

	got, err := tag.ParseBeatgridID3(value)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBeatgridNoMarkersRoundTrip(t *testing.T) {
	b := &tag.Beatgrid{
		Version:  serato.Version{Major: 1, Minor: 0},
		Terminal: tag.BeatgridTerminalMarker{PositionSeconds: 1, BPM: 120},
		Footer:   0x00,
	}
	value, err := b.WriteFLAC()
	require.NoError(t, err)
	got, err := tag.ParseBeatgridFLAC(value)
	require.NoError(t, err)
	assert.Equal(t, b.Version, got.Version)
	assert.Empty(t, got.Markers)
	assert.Equal(t, b.Terminal, got.Terminal)
	assert.Equal(t, b.Footer, got.Footer)
}
