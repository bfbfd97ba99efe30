// Package logging defines a logging interface for vsync.
// This package should not be considered stable.
package logging

// A Tracer records events happening on a cadence estimator.
// Callbacks may be nil; events without a callback are ignored.
type Tracer struct {
	// RecordedFrame is called for every committed frame added to a layer's
	// history. presentTime is zero if the frame carried no presentation
	// timestamp.
	RecordedFrame func(id LayerID, presentTime, queueTime Time)
	// ResolvedVote is called every time a layer's vote is resolved.
	ResolvedVote func(id LayerID, vote Vote)
	// EstimatedRate is called when the cadence heuristic reports a refresh
	// rate, after hysteresis is applied.
	EstimatedRate func(id LayerID, rate float64)
	// HeuristicAbstained is called when the cadence heuristic declines to
	// produce a refresh rate.
	HeuristicAbstained func(id LayerID, reason AbstainReason)
	// Close is called when the tracer is no longer needed.
	// It is never called by the estimator itself.
	Close func()
}

// NewMultiplexedTracer creates a new tracer that multiplexes events to
// multiple tracers. Nil tracers are ignored.
func NewMultiplexedTracer(tracers ...*Tracer) *Tracer {
	var ts []*Tracer
	for _, t := range tracers {
		if t != nil {
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return nil
	}
	if len(ts) == 1 {
		return ts[0]
	}
	return &Tracer{
		RecordedFrame: func(id LayerID, presentTime, queueTime Time) {
			for _, t := range ts {
				if t.RecordedFrame != nil {
					t.RecordedFrame(id, presentTime, queueTime)
				}
			}
		},
		ResolvedVote: func(id LayerID, vote Vote) {
			for _, t := range ts {
				if t.ResolvedVote != nil {
					t.ResolvedVote(id, vote)
				}
			}
		},
		EstimatedRate: func(id LayerID, rate float64) {
			for _, t := range ts {
				if t.EstimatedRate != nil {
					t.EstimatedRate(id, rate)
				}
			}
		},
		HeuristicAbstained: func(id LayerID, reason AbstainReason) {
			for _, t := range ts {
				if t.HeuristicAbstained != nil {
					t.HeuristicAbstained(id, reason)
				}
			}
		},
		Close: func() {
			for _, t := range ts {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
