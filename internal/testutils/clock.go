// Package testutils provides scripted input, recording output, in-memory
// repositories and a fixed clock for AssetTracker tests.
package testutils

import "time"

// FixedNow is the reference "now" used by tests: 2025-01-01 12:00 local time.
var FixedNow = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local)

// Clock returns a clock function that always reports t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Date returns midnight local time of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
