package out

import (
	"context"
	"time"

	timerout "sabibi/internal/modules/timer/port/out"
)

type SystemTickSource struct {
	interval time.Duration
}

func NewSystemTickSource(interval time.Duration) timerout.TickSource {
	if interval <= 0 {
		interval = time.Second
	}
	return &SystemTickSource{interval: interval}
}

func (s *SystemTickSource) Ticks(ctx context.Context) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
