package display

import "time"

// HistorySize is the maximum number of frame samples kept per layer.
const HistorySize = 90

// HistoryDuration is the minimum time the frame history has to span before
// the cadence heuristic may run on a partially filled window.
const HistoryDuration = time.Second

// ActiveWindow is how far back the most recent frame may lie for the layer
// to still count as active. Layers beyond it are considered dormant.
const ActiveWindow = 1200 * time.Millisecond

// FrequentWindowSize is the number of most recent frames inspected by the
// frequency classification.
const FrequentWindowSize = 3

// MaxFrequentPeriod is the window within which the last FrequentWindowSize
// frames must have arrived for the layer to count as frequent.
const MaxFrequentPeriod = 250 * time.Millisecond

// RateMargin is the minimum change (in Hz) before a newly calculated
// refresh rate replaces the last reported one.
const RateMargin = 1.0
