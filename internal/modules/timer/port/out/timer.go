package out

import (
	"context"
	"time"
)

// Recorder persists a finished study interval.
type Recorder interface {
	RecordStudy(ctx context.Context, studyMinutes int) error
}

// TickSource delivers the instants that drive a headless run. The channel
// closes when ctx is done.
type TickSource interface {
	Ticks(ctx context.Context) <-chan time.Time
}
