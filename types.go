package vsync

import "github.com/vsync-go/vsync/internal/display"

type (
	// A LayerID identifies a single tracked layer.
	LayerID = display.LayerID
	// A Vote is a layer's refresh rate request.
	Vote = display.Vote
	// VoteType is the type of a layer's refresh rate vote.
	VoteType = display.VoteType
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
