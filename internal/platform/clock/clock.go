package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in the local zone. Completion dates are
// local calendar days, so UTC would shift late-evening sessions.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
