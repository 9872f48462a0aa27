package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"sabibi/internal/modules/timer/domain"
	timerout "sabibi/internal/modules/timer/port/out"
	"sabibi/internal/platform/clock"
	apperrors "sabibi/internal/platform/errors"
	"sabibi/internal/platform/logging"
)

type TimerService struct {
	clock    clock.Clock
	recorder timerout.Recorder
	ticks    timerout.TickSource
	logger   *slog.Logger

	mu     sync.Mutex
	active *domain.Timer
}

func NewTimerService(clock clock.Clock, recorder timerout.Recorder, ticks timerout.TickSource, logger *slog.Logger) *TimerService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TimerService{clock: clock, recorder: recorder, ticks: ticks, logger: logger, active: domain.New()}
}

type RunResult struct {
	CompletedCycles int
	RecordedMinutes int
	Recorded        int
}

// Run drives a timer for plan until it finishes or ctx ends. Every finished
// study interval is recorded before the run continues; a failed record
// aborts the run.
func (s *TimerService) Run(ctx context.Context, plan domain.Plan, progress func(domain.Snapshot)) (RunResult, error) {
	if s.ticks == nil {
		return RunResult{}, fmt.Errorf("tick source is not configured")
	}
	timer := domain.New()
	if err := timer.Start(plan, s.clock.Now()); err != nil {
		return RunResult{}, err
	}
	s.logger.Info("timer started", logging.Preset(plan.Label), slog.Int("cycles", plan.Cycles))

	result := RunResult{}
	ticks := s.ticks.Ticks(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("timer cancelled", logging.Preset(plan.Label), slog.Int("recorded", result.Recorded))
			return result, ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				if err := ctx.Err(); err != nil {
					return result, err
				}
				return result, fmt.Errorf("tick source closed: %w", apperrors.ErrTimerNotRunning)
			}
			for _, event := range timer.Tick(now) {
				if event.Kind == domain.EventStudyCompleted {
					if err := s.CompleteStudy(ctx, event.StudyMinutes); err != nil {
						return result, err
					}
					result.Recorded++
					result.RecordedMinutes += event.StudyMinutes
				}
			}
			result.CompletedCycles = timer.Completed()
			if progress != nil {
				progress(timer.Snapshot(now))
			}
			if timer.Phase() == domain.PhaseFinished {
				s.logger.Info("timer finished", logging.Preset(plan.Label), slog.Int("recorded", result.Recorded))
				return result, nil
			}
		}
	}
}

func (s *TimerService) CompleteStudy(ctx context.Context, studyMinutes int) error {
	if s.recorder == nil {
		return fmt.Errorf("completion recorder is not configured")
	}
	if err := s.recorder.RecordStudy(ctx, studyMinutes); err != nil {
		return fmt.Errorf("record study completion: %w", err)
	}
	return nil
}

// Start begins the interactive timer used by the terminal UI.
func (s *TimerService) Start(_ context.Context, plan domain.Plan) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if err := s.active.Start(plan, now); err != nil {
		return domain.Snapshot{}, err
	}
	s.logger.Info("timer started", logging.Preset(plan.Label))
	return s.active.Snapshot(now), nil
}

// Tick advances the interactive timer and records finished study intervals.
// The snapshot is valid even when recording fails.
func (s *TimerService) Tick(ctx context.Context) (domain.Snapshot, []domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	events := s.active.Tick(now)
	var recordErr error
	for _, event := range events {
		if event.Kind != domain.EventStudyCompleted {
			continue
		}
		if err := s.CompleteStudy(ctx, event.StudyMinutes); err != nil {
			s.logger.Error("study completion not saved", logging.Minutes(event.StudyMinutes), logging.Error(err))
			recordErr = err
		}
	}
	return s.active.Snapshot(now), events, recordErr
}

func (s *TimerService) Pause(_ context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if err := s.active.Pause(now); err != nil {
		return domain.Snapshot{}, err
	}
	return s.active.Snapshot(now), nil
}

func (s *TimerService) Resume(_ context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if err := s.active.Resume(now); err != nil {
		return domain.Snapshot{}, err
	}
	return s.active.Snapshot(now), nil
}

func (s *TimerService) Reset(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.Reset()
	return s.active.Snapshot(s.clock.Now())
}

func (s *TimerService) State(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.Snapshot(s.clock.Now())
}
