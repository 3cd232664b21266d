package toolkit

import "time"

// Clock provides wall-clock time to the toolkit.
// An interface keeps the clock-reading operations deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
