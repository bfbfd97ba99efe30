// Package vsync estimates the frame cadence of visual layers.
//
// One Estimator tracks the presentation timestamps of a single layer and
// turns them into a refresh rate vote. The caller is expected to serialize
// all calls to an Estimator and to supply all timestamps explicitly, on a
// single monotonic clock.
package vsync

import (
	"math"
	"time"

	"github.com/vsync-go/vsync/internal/display"
	"github.com/vsync-go/vsync/internal/monotime"
	"github.com/vsync-go/vsync/internal/utils/ringbuffer"
	"github.com/vsync-go/vsync/logging"
)

type frameSample struct {
	// presentTime is the frame's presentation timestamp,
	// or zero if none was reported.
	presentTime monotime.Time
	// queueTime is max(presentTime, observation time).
	// It is what all windowing decisions are based on.
	queueTime monotime.Time
}

// An Estimator tracks the frame cadence of a single layer.
//
// It keeps a bounded history of frame samples and resolves them into a
// refresh rate vote: explicit votes pass through untouched, infrequently
// updating layers vote for the minimum rate, and layers with a steady
// cadence vote for the rate matching that cadence. When the layer updates
// frequently but no stable cadence can be calculated, the estimator falls
// back to the maximum rate to avoid visible judder.
//
// An Estimator is not safe for concurrent use.
type Estimator struct {
	id                    display.LayerID
	highRefreshRatePeriod time.Duration
	defaultVote           display.VoteType
	vote                  display.Vote

	frameTimes      ringbuffer.RingBuffer[frameSample]
	lastUpdatedTime monotime.Time
	// lastReportedRate persists across calls.
	// It only changes when a new estimate moves by more than RateMargin,
	// so the resolved vote doesn't oscillate on estimation jitter.
	lastReportedRate float64

	tracer *logging.Tracer
}

// NewEstimator creates an estimator for a single layer.
//
// highRefreshRatePeriod is the shortest inter-frame period the display can
// show. Observed deltas below it are treated as noise, not signal.
// The tracer may be nil.
func NewEstimator(id LayerID, highRefreshRatePeriod time.Duration, defaultVote VoteType, tracer *logging.Tracer) *Estimator {
	e := &Estimator{
		id:                    id,
		highRefreshRatePeriod: highRefreshRatePeriod,
		defaultVote:           defaultVote,
		vote:                  display.Vote{Type: defaultVote},
		tracer:                tracer,
	}
	e.frameTimes.Init(display.HistorySize)
	return e
}

// RecordFrame adds a committed frame to the layer's history.
// presentTime may be zero (no presentation timestamp reported); negative
// values are clamped to zero. Once the history is at capacity, the oldest
// sample is evicted.
func (e *Estimator) RecordFrame(presentTime, now monotime.Time) {
	if presentTime < 0 {
		presentTime = 0
	}
	e.lastUpdatedTime = max(presentTime, now)

	if e.frameTimes.Len() == display.HistorySize {
		e.frameTimes.PopFront()
	}
	e.frameTimes.PushBack(frameSample{presentTime: presentTime, queueTime: e.lastUpdatedTime})

	if e.tracer != nil && e.tracer.RecordedFrame != nil {
		e.tracer.RecordedFrame(e.id, presentTime, e.lastUpdatedTime)
	}
}

// IsRecentlyActive says if the layer produced a frame within the active
// window. Dormant layers shouldn't influence rate decisions.
func (e *Estimator) IsRecentlyActive(now monotime.Time) bool {
	if e.frameTimes.Empty() {
		return false
	}
	return e.frameTimes.PeekBack().queueTime >= now.Add(-display.ActiveWindow)
}

// IsFrequent says if the layer updates often enough to deserve a dedicated
// rate decision.
func (e *Estimator) IsFrequent(now monotime.Time) bool {
	// Assume the layer is frequent if too few present times have been recorded.
	if e.frameTimes.Len() < display.FrequentWindowSize {
		return true
	}

	// The layer is frequent if the earliest sample in the window of most
	// recent present times is within the threshold.
	earliest := e.frameTimes.Get(e.frameTimes.Len() - display.FrequentWindowSize)
	return earliest.queueTime >= now.Add(-display.MaxFrequentPeriod)
}

// hasEnoughHistory says if the history is large enough for the cadence
// heuristic: either at capacity, or spanning at least HistoryDuration.
func (e *Estimator) hasEnoughHistory() bool {
	if e.frameTimes.Len() == display.HistorySize {
		return true
	}
	if e.frameTimes.Empty() {
		return false
	}
	span := e.frameTimes.PeekBack().queueTime.Sub(e.frameTimes.PeekFront().queueTime)
	return span >= display.HistoryDuration
}

// delta returns the inter-frame period between two consecutive samples,
// floored at the fastest period the display can show. The floor absorbs
// duplicate and too-close timestamps.
func (e *Estimator) delta(i int) time.Duration {
	d := e.frameTimes.Get(i + 1).presentTime.Sub(e.frameTimes.Get(i).presentTime)
	return max(d, e.highRefreshRatePeriod)
}

// calculateRefreshRate calculates the refresh rate (in Hz) matching the
// layer's observed cadence. It reports ok == false if the history is too
// short, a sample has no presentation timestamp, or the window contains a
// burst or stall inconsistent with a steady cadence.
func (e *Estimator) calculateRefreshRate() (rate float64, ok bool) {
	if !e.hasEnoughHistory() {
		e.abstain(logging.AbstainNotEnoughHistory)
		return 0, false
	}

	// Calculate the refresh rate by finding the average delta between frames.
	var totalDeltas time.Duration
	n := e.frameTimes.Len()
	for i := 0; i < n-1; i++ {
		// Without presentation timestamps we can't calculate the refresh rate.
		if e.frameTimes.Get(i).presentTime.IsZero() || e.frameTimes.Get(i+1).presentTime.IsZero() {
			e.abstain(logging.AbstainMissingPresentTime)
			return 0, false
		}
		totalDeltas += e.delta(i)
	}
	averageFrameTime := float64(totalDeltas) / float64(n-1)

	// Make sure the captured frames are evenly distributed, so that the
	// average wasn't taken across a burst of frames.
	for i := 0; i < n-1; i++ {
		if math.Abs(float64(e.delta(i))-averageFrameTime) > 2*averageFrameTime {
			e.abstain(logging.AbstainInconsistentCadence)
			return 0, false
		}
	}

	refreshRate := 1e9 / averageFrameTime
	if math.Abs(refreshRate-e.lastReportedRate) > display.RateMargin {
		e.lastReportedRate = refreshRate
	}

	if e.tracer != nil && e.tracer.EstimatedRate != nil {
		e.tracer.EstimatedRate(e.id, e.lastReportedRate)
	}
	return e.lastReportedRate, true
}

func (e *Estimator) abstain(reason logging.AbstainReason) {
	if e.tracer != nil && e.tracer.HeuristicAbstained != nil {
		e.tracer.HeuristicAbstained(e.id, reason)
	}
}

// ResolveVote resolves the layer's current vote.
// Non-heuristic votes pass through unchanged. Under a heuristic vote, an
// infrequently updating layer votes for the minimum rate, a steady cadence
// votes for the matching rate, and a frequent layer without a stable
// cadence estimate votes for the maximum rate.
func (e *Estimator) ResolveVote(now monotime.Time) Vote {
	vote := e.resolveVote(now)
	if e.tracer != nil && e.tracer.ResolvedVote != nil {
		e.tracer.ResolvedVote(e.id, vote)
	}
	return vote
}

func (e *Estimator) resolveVote(now monotime.Time) display.Vote {
	switch e.vote.Type {
	case display.VoteNone, display.VoteMin, display.VoteMax,
		display.VoteExplicitDefault, display.VoteExplicitExactOrMultiple:
		return e.vote
	case display.VoteHeuristic:
	default:
		return e.vote
	}

	if !e.IsFrequent(now) {
		return display.Vote{Type: display.VoteMin}
	}
	if rate, ok := e.calculateRefreshRate(); ok {
		return display.Vote{Type: display.VoteHeuristic, FPS: rate}
	}
	return display.Vote{Type: display.VoteMax}
}

// Vote returns the layer's current vote, as set by the owner.
// This is not the resolved vote; use ResolveVote for that.
func (e *Estimator) Vote() Vote { return e.vote }

// SetVote replaces the layer's vote, e.g. to switch the layer to an
// explicit fixed-rate vote.
func (e *Estimator) SetVote(v Vote) { e.vote = v }

// ResetVote restores the default vote.
func (e *Estimator) ResetVote() { e.vote = display.Vote{Type: e.defaultVote} }

// SetDefaultVote changes the vote that ResetVote restores.
func (e *Estimator) SetDefaultVote(t VoteType) { e.defaultVote = t }

// LastUpdatedTime returns the queue time of the most recently recorded
// frame, or zero if no frame was ever recorded.
func (e *Estimator) LastUpdatedTime() monotime.Time { return e.lastUpdatedTime }

// ClearHistory drops all recorded frames. The vote, the default vote and
// the rate hysteresis state are unaffected.
func (e *Estimator) ClearHistory() { e.frameTimes.Clear() }
