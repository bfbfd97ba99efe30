package logging

import (
	"github.com/vsync-go/vsync/internal/display"
	"github.com/vsync-go/vsync/internal/monotime"
)

type (
	// A LayerID identifies a single tracked layer.
	LayerID = display.LayerID
	// A Vote is a layer's refresh rate request.
	Vote = display.Vote
	// VoteType is the type of a layer's refresh rate vote.
	VoteType = display.VoteType
	// A Time is an instant on the monotonic clock shared by the caller
	// and the estimator.
	Time = monotime.Time
)

const (
	// VoteNone: the layer doesn't vote.
	VoteNone = display.VoteNone
	// VoteMin: the layer votes for the lowest refresh rate.
	VoteMin = display.VoteMin
	// VoteMax: the layer votes for the highest refresh rate.
	VoteMax = display.VoteMax
	// VoteHeuristic: the vote is calculated from the layer's observed cadence.
	VoteHeuristic = display.VoteHeuristic
	// VoteExplicitDefault: the application set a default frame rate for the layer.
	VoteExplicitDefault = display.VoteExplicitDefault
	// VoteExplicitExactOrMultiple: the application set an exact frame rate
	// (or a multiple of it) for the layer.
	VoteExplicitExactOrMultiple = display.VoteExplicitExactOrMultiple
)

// AbstainReason is the reason why the cadence heuristic didn't produce a
// refresh rate.
type AbstainReason uint8

const (
	// AbstainNotEnoughHistory: the frame history is neither at capacity nor
	// spans the minimum duration.
	AbstainNotEnoughHistory AbstainReason = iota
	// AbstainMissingPresentTime: a frame in the window carries no
	// presentation timestamp.
	AbstainMissingPresentTime
	// AbstainInconsistentCadence: an inter-frame delta deviates too far from
	// the window average.
	AbstainInconsistentCadence
)

func (r AbstainReason) String() string {
	switch r {
	case AbstainNotEnoughHistory:
		return "not_enough_history"
	case AbstainMissingPresentTime:
		return "missing_present_time"
	case AbstainInconsistentCadence:
		return "inconsistent_cadence"
	default:
		return "unknown"
	}
}
