// Package tag implements the per-kind Serato tag payload codecs: Analysis,
// Autotags, Beatgrid, Markers (legacy), Markers2, Overview, VidAssoc and
// RelVolAd, the cross-cutting marker model they share (Cue, Loop, Flip), and
// the merged Container view.
package tag

import (
	"bytes"
	"io"

	"github.com/mewkiz/serato"
)

// Cue is a single saved playback position (a "hot cue").
type Cue struct {
	Index           uint8
	PositionMillis  uint32
	Color           serato.Color
	Label           string
}

// Loop is a saved playback range.
type Loop struct {
	Index                uint8
	StartPositionMillis  uint32
	EndPositionMillis    uint32
	Color                serato.Color
	IsLocked             bool
	Label                string
}

// FlipActionKind identifies which variant a FlipAction holds.
type FlipActionKind int

// FlipAction kinds.
const (
	FlipActionJump FlipActionKind = iota
	FlipActionCensor
	FlipActionUnknown
)

// FlipAction is one step of a Flip edit sequence: either a Jump (skip
// between two positions), a Censor (mute and resume at altered speed), or an
// Unknown action preserved verbatim for forward compatibility.
type FlipAction struct {
	Kind FlipActionKind

	// Jump fields (Kind == FlipActionJump).
	SourceSeconds float64
	TargetSeconds float64

	// Censor fields (Kind == FlipActionCensor).
	StartSeconds float64
	EndSeconds   float64
	SpeedFactor  float64

	// Unknown fields (Kind == FlipActionUnknown).
	UnknownID   uint8
	UnknownData []byte
}

// flip action ids, as written on the wire.
const (
	flipActionIDJump   = 0
	flipActionIDCensor = 1
)

func readFlipAction(r io.Reader) (FlipAction, error) {
	const op = "tag.readFlipAction"
	idBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return FlipAction{}, serato.WrapParseError(op, err)
	}
	id := idBuf[0]

	data, err := readLengthPrefixed(r)
	if err != nil {
		return FlipAction{}, serato.WrapParseError(op, err)
	}
	body := bytes.NewReader(data)

	var action FlipAction
	switch id {
	case flipActionIDJump:
		source, err := readFloat64(body)
		if err != nil {
			return FlipAction{}, serato.WrapParseError(op, err)
		}
		target, err := readFloat64(body)
		if err != nil {
			return FlipAction{}, serato.WrapParseError(op, err)
		}
		if body.Len() != 0 {
			return FlipAction{}, serato.ParseErrorf(op, "flip action id %d: %d unconsumed bytes", id, body.Len())
		}
		action = FlipAction{Kind: FlipActionJump, SourceSeconds: source, TargetSeconds: target}
	case flipActionIDCensor:
		start, err := readFloat64(body)
		if err != nil {
			return FlipAction{}, serato.WrapParseError(op, err)
		}
		end, err := readFloat64(body)
		if err != nil {
			return FlipAction{}, serato.WrapParseError(op, err)
		}
		speed, err := readFloat64(body)
		if err != nil {
			return FlipAction{}, serato.WrapParseError(op, err)
		}
		if body.Len() != 0 {
			return FlipAction{}, serato.ParseErrorf(op, "flip action id %d: %d unconsumed bytes", id, body.Len())
		}
		action = FlipAction{Kind: FlipActionCensor, StartSeconds: start, EndSeconds: end, SpeedFactor: speed}
	default:
		// Unknown action ids are preserved verbatim, data untouched, for
		// forward compatibility with action kinds this package does not
		// yet know how to interpret.
		action = FlipAction{Kind: FlipActionUnknown, UnknownID: id, UnknownData: data}
	}
	return action, nil
}

func writeFlipAction(w io.Writer, action FlipAction) (int, error) {
	const op = "tag.writeFlipAction"
	switch action.Kind {
	case FlipActionJump:
		var body bytes.Buffer
		if _, err := writeFloat64(&body, action.SourceSeconds); err != nil {
			return 0, err
		}
		if _, err := writeFloat64(&body, action.TargetSeconds); err != nil {
			return 0, err
		}
		return writeIDAndData(w, flipActionIDJump, body.Bytes())
	case FlipActionCensor:
		var body bytes.Buffer
		if _, err := writeFloat64(&body, action.StartSeconds); err != nil {
			return 0, err
		}
		if _, err := writeFloat64(&body, action.EndSeconds); err != nil {
			return 0, err
		}
		if _, err := writeFloat64(&body, action.SpeedFactor); err != nil {
			return 0, err
		}
		return writeIDAndData(w, flipActionIDCensor, body.Bytes())
	case FlipActionUnknown:
		return writeIDAndData(w, action.UnknownID, action.UnknownData)
	default:
		return 0, serato.ParseErrorf(op, "unknown flip action kind %d", action.Kind)
	}
}

func writeIDAndData(w io.Writer, id uint8, data []byte) (int, error) {
	const op = "tag.writeIDAndData"
	n, err := w.Write([]byte{id})
	if err != nil {
		return n, serato.WrapIOError(op, err)
	}
	nl, err := writeUint32(w, uint32(len(data)))
	n += nl
	if err != nil {
		return n, err
	}
	nd, err := w.Write(data)
	n += nd
	if err != nil {
		return n, serato.WrapIOError(op, err)
	}
	return n, nil
}

// Flip is a user-defined edit sequence of Jump/Censor actions.
type Flip struct {
	Index     uint8
	IsEnabled bool
	Label     string
	IsLoop    bool
	Actions   []FlipAction
}
