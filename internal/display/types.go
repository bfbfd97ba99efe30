package display

// A LayerID identifies a single tracked layer.
type LayerID uint64

// VoteType is the type of a layer's refresh rate vote.
type VoteType uint8

const (
	// VoteNone: the layer doesn't vote.
	VoteNone VoteType = iota
	// VoteMin: the layer votes for the lowest refresh rate.
	VoteMin
	// VoteMax: the layer votes for the highest refresh rate.
	VoteMax
	// VoteHeuristic: the vote is calculated from the layer's observed cadence.
	VoteHeuristic
	// VoteExplicitDefault: the application set a default frame rate for the layer.
	VoteExplicitDefault
	// VoteExplicitExactOrMultiple: the application set an exact frame rate
	// (or a multiple of it) for the layer.
	VoteExplicitExactOrMultiple
)

func (t VoteType) String() string {
	switch t {
	case VoteNone:
		return "none"
	case VoteMin:
		return "min"
	case VoteMax:
		return "max"
	case VoteHeuristic:
		return "heuristic"
	case VoteExplicitDefault:
		return "explicit_default"
	case VoteExplicitExactOrMultiple:
		return "explicit_exact_or_multiple"
	default:
		return "unknown"
	}
}

// A Vote is a layer's refresh rate request.
// FPS is only meaningful for rate-bearing vote types.
type Vote struct {
	Type VoteType
	FPS  float64
}
