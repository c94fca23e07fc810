package tag

import (
	"sort"

	"github.com/mewkiz/serato"
)

// Container holds at most one parsed value per Serato tag kind for a single
// track, and exposes merged accessors that apply Serato's own (sometimes
// surprising) precedence rules across kinds. It owns whatever tags are
// assigned into it; it is not itself persisted.
type Container struct {
	Analysis *Analysis
	Autotags *Autotags
	Beatgrid *Beatgrid
	Markers  *Markers
	Markers2 *Markers2
	Overview *Overview
	VidAssoc *VidAssoc
	RelVolAd *RelVolAd
}

// BPMLocked reports Markers2's BPMLock marker, if present.
func (c *Container) BPMLocked() (locked bool, ok bool) {
	if c.Markers2 == nil || c.Markers2.Content.BPMLocked == nil {
		return false, false
	}
	return *c.Markers2.Content.BPMLocked, true
}

// TrackColor returns Markers2's Color marker if present, falling back to
// Markers's trailing color.
func (c *Container) TrackColor() (serato.Color, bool) {
	if c.Markers2 != nil && c.Markers2.Content.Color != nil {
		return *c.Markers2.Content.Color, true
	}
	if c.Markers != nil {
		return c.Markers.Color, true
	}
	return serato.Color{}, false
}

// Cues merges Markers's and Markers2's cues by index: a cue present in
// Markers overrides the Markers2 cue at the same index, but an index only
// present in Markers2 still comes through.
func (c *Container) Cues() []Cue {
	byIndex := make(map[uint8]Cue)
	if c.Markers2 != nil {
		for _, cue := range c.Markers2.Content.Cues {
			byIndex[cue.Index] = cue
		}
	}
	if c.Markers != nil {
		for _, cue := range c.Markers.Cues {
			byIndex[cue.Index] = cue
		}
	}
	return sortedCues(byIndex)
}

// Loops merges Markers's and Markers2's loops by index, with the same
// per-index precedence as Cues.
func (c *Container) Loops() []Loop {
	byIndex := make(map[uint8]Loop)
	if c.Markers2 != nil {
		for _, loop := range c.Markers2.Content.Loops {
			byIndex[loop.Index] = loop
		}
	}
	if c.Markers != nil {
		for _, loop := range c.Markers.Loops {
			byIndex[loop.Index] = loop
		}
	}
	return sortedLoops(byIndex)
}

func sortedCues(byIndex map[uint8]Cue) []Cue {
	if len(byIndex) == 0 {
		return nil
	}
	indices := make([]uint8, 0, len(byIndex))
	for i := range byIndex {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	cues := make([]Cue, len(indices))
	for i, idx := range indices {
		cues[i] = byIndex[idx]
	}
	return cues
}

func sortedLoops(byIndex map[uint8]Loop) []Loop {
	if len(byIndex) == 0 {
		return nil
	}
	indices := make([]uint8, 0, len(byIndex))
	for i := range byIndex {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	loops := make([]Loop, len(indices))
	for i, idx := range indices {
		loops[i] = byIndex[idx]
	}
	return loops
}

// Flips returns Markers2's flips. Markers (legacy) carries no flip data.
func (c *Container) Flips() []Flip {
	if c.Markers2 == nil {
		return nil
	}
	return c.Markers2.Content.Flips
}

// AutoGain returns Autotags's auto_gain field, if present.
func (c *Container) AutoGain() (string, bool) {
	if c.Autotags == nil {
		return "", false
	}
	return c.Autotags.AutoGain, true
}

// GainDB returns Autotags's gain_db field, if present.
func (c *Container) GainDB() (string, bool) {
	if c.Autotags == nil {
		return "", false
	}
	return c.Autotags.GainDB, true
}
