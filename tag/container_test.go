package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mewkiz/serato"
	"github.com/mewkiz/serato/tag"
)

// Container with both Markers and Markers2 present where Markers2 has a
// Color = red and Markers has a trailing color blue: TrackColor returns red
// (Markers2 wins for color); at an index both tags share, Cues returns the
// Markers cue (Markers wins for cues/loops).
func TestContainerMergePrecedenceConcreteScenario(t *testing.T) {
	red := serato.NewColor(0xFF, 0x00, 0x00)
	blue := serato.NewColor(0x00, 0x00, 0xFF)

	markersCue := tag.Cue{Index: 0, PositionMillis: 1000, Color: red, Label: "from markers"}
	markers2Cue := tag.Cue{Index: 0, PositionMillis: 2000, Color: blue, Label: "from markers2"}

	c := &tag.Container{
		Markers: &tag.Markers{
			Cues:  []tag.Cue{markersCue},
			Color: blue,
		},
		Markers2: &tag.Markers2{
			Content: tag.Markers2Content{
				Color: &red,
				Cues:  []tag.Cue{markers2Cue},
			},
		},
	}

	color, ok := c.TrackColor()
	assert.True(t, ok)
	assert.Equal(t, red, color)

	cues := c.Cues()
	assert.Equal(t, []tag.Cue{markersCue}, cues)
}

func TestContainerFallsBackWhenMarkersAbsent(t *testing.T) {
	cue := tag.Cue{Index: 0, PositionMillis: 500}
	c := &tag.Container{
		Markers2: &tag.Markers2{
			Content: tag.Markers2Content{Cues: []tag.Cue{cue}},
		},
	}
	assert.Equal(t, []tag.Cue{cue}, c.Cues())

	_, ok := c.TrackColor()
	assert.False(t, ok)
}

func TestContainerAutoGainGainDB(t *testing.T) {
	c := &tag.Container{
		Autotags: &tag.Autotags{AutoGain: "0.5", GainDB: "-3.2"},
	}
	gain, ok := c.AutoGain()
	assert.True(t, ok)
	assert.Equal(t, "0.5", gain)

	db, ok := c.GainDB()
	assert.True(t, ok)
	assert.Equal(t, "-3.2", db)
}
