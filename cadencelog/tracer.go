// Package cadencelog writes estimator events to a JSON-SEQ event log,
// one record-separator framed JSON value per event.
package cadencelog

import (
	"io"

	"github.com/vsync-go/vsync/internal/monotime"
	"github.com/vsync-go/vsync/logging"
)

// NewTracer creates a tracer that writes a cadence event log to w.
// Events are serialized on a dedicated goroutine; the log is flushed and
// w closed when the tracer's Close callback is called.
func NewTracer(w io.WriteCloser) *logging.Tracer {
	wr := newWriter(w, monotime.Now())
	go wr.Run()
	return &logging.Tracer{
		RecordedFrame: func(id logging.LayerID, presentTime, queueTime logging.Time) {
			wr.RecordEvent(monotime.Now(), eventFrameRecorded{
				LayerID:     id,
				PresentTime: presentTime,
				QueueTime:   queueTime,
			})
		},
		ResolvedVote: func(id logging.LayerID, vote logging.Vote) {
			wr.RecordEvent(monotime.Now(), eventVoteResolved{LayerID: id, Vote: vote})
		},
		EstimatedRate: func(id logging.LayerID, rate float64) {
			wr.RecordEvent(monotime.Now(), eventRateEstimated{LayerID: id, Rate: rate})
		},
		HeuristicAbstained: func(id logging.LayerID, reason logging.AbstainReason) {
			wr.RecordEvent(monotime.Now(), eventHeuristicAbstained{LayerID: id, Reason: reason})
		},
		Close: wr.Close,
	}
}
