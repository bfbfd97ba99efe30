package cadencelog

import (
	"time"

	"github.com/francoispqt/gojay"
)

type topLevel struct {
	trace trace
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (l topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("cadencelog_format", "JSON-SEQ")
	enc.StringKey("cadencelog_version", "0.1")
	enc.StringKey("title", "vsync cadence log")
	enc.ObjectKey("trace", l.trace)
}

type trace struct {
	CommonFields commonFields
}

var _ gojay.MarshalerJSONObject = trace{}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("common_fields", t.CommonFields)
}

type commonFields struct {
	ReferenceTime time.Time
}

var _ gojay.MarshalerJSONObject = commonFields{}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
}
