package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiplexing(t *testing.T) {
	var events1, events2 []string
	t1 := &Tracer{
		RecordedFrame:      func(LayerID, Time, Time) { events1 = append(events1, "frame") },
		ResolvedVote:       func(LayerID, Vote) { events1 = append(events1, "vote") },
		EstimatedRate:      func(LayerID, float64) { events1 = append(events1, "rate") },
		HeuristicAbstained: func(LayerID, AbstainReason) { events1 = append(events1, "abstain") },
		Close:              func() { events1 = append(events1, "close") },
	}
	t2 := &Tracer{
		ResolvedVote: func(LayerID, Vote) { events2 = append(events2, "vote") },
	}
	tracer := NewMultiplexedTracer(t1, t2)
	tracer.RecordedFrame(1, 0, 42)
	tracer.ResolvedVote(1, Vote{Type: VoteMax})
	tracer.EstimatedRate(1, 60)
	tracer.HeuristicAbstained(1, AbstainNotEnoughHistory)
	tracer.Close()
	require.Equal(t, []string{"frame", "vote", "rate", "abstain", "close"}, events1)
	require.Equal(t, []string{"vote"}, events2)
}

func TestMultiplexingSingleTracer(t *testing.T) {
	tr := &Tracer{}
	require.Equal(t, tr, NewMultiplexedTracer(tr))
	require.Equal(t, tr, NewMultiplexedTracer(tr, nil))
}

func TestMultiplexingWithoutTracers(t *testing.T) {
	require.Nil(t, NewMultiplexedTracer())
	require.Nil(t, NewMultiplexedTracer(nil, nil))
}

func TestAbstainReasonStringer(t *testing.T) {
	require.Equal(t, "not_enough_history", AbstainNotEnoughHistory.String())
	require.Equal(t, "missing_present_time", AbstainMissingPresentTime.String())
	require.Equal(t, "inconsistent_cadence", AbstainInconsistentCadence.String())
	require.Equal(t, "unknown", AbstainReason(42).String())
}
