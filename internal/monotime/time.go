// Package monotime provides a nanosecond-resolution monotonic timestamp.
//
// All cadence estimation runs on a single monotonic clock shared between
// the caller and the estimator. Using an int64 instead of time.Time keeps
// comparisons and arithmetic on the per-frame hot path trivially cheap.
package monotime

import "time"

// A Time is an instant on the process-local monotonic clock, expressed in
// nanoseconds. The zero value means "no time set" and is used as the
// sentinel for frames that carry no presentation timestamp.
type Time int64

// All Time values are offsets from a reference captured at process start,
// shifted by 1ns so that Now never returns the zero value.
var reference = time.Now()

// Now returns the current monotonic time.
func Now() Time { return Time(time.Since(reference)) + 1 }

// Since returns the time elapsed since t.
func Since(t Time) time.Duration { return Now().Sub(t) }

// Until returns the duration until t.
func Until(t Time) time.Duration { return t.Sub(Now()) }

// FromTime converts a time.Time into a monotonic Time.
// The zero time.Time converts to the zero Time.
func FromTime(t time.Time) Time {
	if t.IsZero() {
		return 0
	}
	return Time(t.Sub(reference)) + 1
}

// ToTime converts t into a time.Time.
// The zero Time converts to the zero time.Time.
func (t Time) ToTime() time.Time {
	if t == 0 {
		return time.Time{}
	}
	return reference.Add(time.Duration(t - 1))
}

// Add returns t+d.
func (t Time) Add(d time.Duration) Time { return t + Time(d) }

// Sub returns the duration t-u.
func (t Time) Sub(u Time) time.Duration { return time.Duration(t - u) }

// Before reports whether t is before u.
func (t Time) Before(u Time) bool { return t < u }

// After reports whether t is after u.
func (t Time) After(u Time) bool { return t > u }

// Equal reports whether t and u are the same instant.
func (t Time) Equal(u Time) bool { return t == u }

// IsZero reports whether t is the zero value.
func (t Time) IsZero() bool { return t == 0 }
