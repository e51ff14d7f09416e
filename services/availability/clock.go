package availability

import "time"

// Clock abstracts wall-clock time. Advance-notice and past-date filtering are
// evaluated against Now() at query time, so the same stored data yields
// different results over time; tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }
