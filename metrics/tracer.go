// Package metrics exposes estimator events as Prometheus metrics.
package metrics

import (
	"errors"
	"strconv"

	"github.com/vsync-go/vsync/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "vsync"

var (
	framesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "frames_recorded_total",
			Help:      "Frames added to layer histories",
		},
	)
	framesWithoutPresentTime = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "frames_without_present_time_total",
			Help:      "Recorded frames that carried no presentation timestamp",
		},
	)
	votesResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "votes_resolved_total",
			Help:      "Resolved refresh rate votes",
		},
		[]string{"vote_type"},
	)
	heuristicAbstained = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "heuristic_abstained_total",
			Help:      "Cadence heuristic runs that didn't produce a rate",
		},
		[]string{"reason"},
	)
	estimatedRate = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "estimated_rate_hz",
			Help:      "Last refresh rate estimated for a layer",
		},
		[]string{"layer"},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
// It can be passed to NewEstimator to collect metrics for all events on
// that layer.
func NewTracer() *logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *logging.Tracer {
	for _, c := range [...]prometheus.Collector{
		framesRecorded,
		framesWithoutPresentTime,
		votesResolved,
		heuristicAbstained,
		estimatedRate,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &logging.Tracer{
		RecordedFrame: func(_ logging.LayerID, presentTime, _ logging.Time) {
			framesRecorded.Inc()
			if presentTime.IsZero() {
				framesWithoutPresentTime.Inc()
			}
		},
		ResolvedVote: func(_ logging.LayerID, vote logging.Vote) {
			votesResolved.WithLabelValues(vote.Type.String()).Inc()
		},
		EstimatedRate: func(id logging.LayerID, rate float64) {
			estimatedRate.WithLabelValues(strconv.FormatUint(uint64(id), 10)).Set(rate)
		},
		HeuristicAbstained: func(_ logging.LayerID, reason logging.AbstainReason) {
			heuristicAbstained.WithLabelValues(reason.String()).Inc()
		},
	}
}
