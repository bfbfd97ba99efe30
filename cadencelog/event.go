package cadencelog

import (
	"time"

	"github.com/vsync-go/vsync/logging"

	"github.com/francoispqt/gojay"
)

func milliseconds(d time.Duration) float64 { return float64(d.Nanoseconds()) / 1e6 }

type category uint8

const categoryScheduler category = iota

func (category) String() string { return "scheduler" }

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

// An event is serialized as an array: [time, category, event, data].
type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

type eventFrameRecorded struct {
	LayerID     logging.LayerID
	PresentTime logging.Time
	QueueTime   logging.Time
}

var _ eventDetails = eventFrameRecorded{}

func (e eventFrameRecorded) Category() category { return categoryScheduler }
func (e eventFrameRecorded) Name() string       { return "frame_recorded" }
func (e eventFrameRecorded) IsNil() bool        { return false }

func (e eventFrameRecorded) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("layer_id", uint64(e.LayerID))
	// a zero present time means the frame carried no presentation timestamp
	enc.Int64KeyOmitEmpty("present_time", int64(e.PresentTime))
	enc.Int64Key("queue_time", int64(e.QueueTime))
}

type eventVoteResolved struct {
	LayerID logging.LayerID
	Vote    logging.Vote
}

var _ eventDetails = eventVoteResolved{}

func (e eventVoteResolved) Category() category { return categoryScheduler }
func (e eventVoteResolved) Name() string       { return "vote_resolved" }
func (e eventVoteResolved) IsNil() bool        { return false }

func (e eventVoteResolved) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("layer_id", uint64(e.LayerID))
	enc.StringKey("vote_type", e.Vote.Type.String())
	enc.Float64KeyOmitEmpty("fps", e.Vote.FPS)
}

type eventRateEstimated struct {
	LayerID logging.LayerID
	Rate    float64
}

var _ eventDetails = eventRateEstimated{}

func (e eventRateEstimated) Category() category { return categoryScheduler }
func (e eventRateEstimated) Name() string       { return "rate_estimated" }
func (e eventRateEstimated) IsNil() bool        { return false }

func (e eventRateEstimated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("layer_id", uint64(e.LayerID))
	enc.Float64Key("rate_hz", e.Rate)
}

type eventHeuristicAbstained struct {
	LayerID logging.LayerID
	Reason  logging.AbstainReason
}

var _ eventDetails = eventHeuristicAbstained{}

func (e eventHeuristicAbstained) Category() category { return categoryScheduler }
func (e eventHeuristicAbstained) Name() string       { return "heuristic_abstained" }
func (e eventHeuristicAbstained) IsNil() bool        { return false }

func (e eventHeuristicAbstained) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("layer_id", uint64(e.LayerID))
	enc.StringKey("reason", e.Reason.String())
}
