package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"sabibi/internal/modules/completion/domain"
	completionout "sabibi/internal/modules/completion/port/out"
	"sabibi/internal/platform/clock"
	apperrors "sabibi/internal/platform/errors"
	"sabibi/internal/platform/logging"
)

type CompletionService struct {
	clock  clock.Clock
	store  completionout.KeyValueStore
	logger *slog.Logger

	// mu is held across Record's load-append-save.
	mu sync.Mutex
}

func NewCompletionService(clock clock.Clock, store completionout.KeyValueStore, logger *slog.Logger) *CompletionService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CompletionService{clock: clock, store: store, logger: logger}
}

// Record appends a completion stamped with today's local date and rewrites
// the whole collection. A corrupt collection is replaced; a failed read is
// returned so unreadable history is never overwritten.
func (s *CompletionService) Record(ctx context.Context, studyMinutes int) (domain.StudyCompletion, int, error) {
	completion, err := domain.NewCompletion(s.clock.Now(), studyMinutes)
	if err != nil {
		return domain.StudyCompletion{}, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	completions, err := s.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCorruptCollection) {
			return domain.StudyCompletion{}, 0, err
		}
		s.logger.Warn("replacing corrupt completion collection", logging.Key(domain.CollectionKey), logging.Error(err))
		completions = []domain.StudyCompletion{}
	}
	completions = append(completions, completion)

	payload, err := domain.EncodeCollection(completions)
	if err != nil {
		return domain.StudyCompletion{}, 0, err
	}
	if err := s.store.Set(ctx, domain.CollectionKey, payload); err != nil {
		s.logger.Error("persist completion failed", logging.Minutes(studyMinutes), logging.Error(err))
		return domain.StudyCompletion{}, 0, fmt.Errorf("persist completions: %w", err)
	}
	s.logger.Debug("completion recorded", logging.Date(completion.Date), logging.Minutes(completion.StudyMinutes))
	return completion, len(completions), nil
}

// Load reads the collection and reports why it could not, distinguishing
// ErrCorruptCollection from storage read failures.
func (s *CompletionService) Load(ctx context.Context) ([]domain.StudyCompletion, error) {
	raw, found, err := s.store.Get(ctx, domain.CollectionKey)
	if err != nil {
		return []domain.StudyCompletion{}, fmt.Errorf("read completions: %w", err)
	}
	if !found {
		return []domain.StudyCompletion{}, nil
	}
	return domain.DecodeCollection(raw)
}

// LoadAll never fails: unreadable or malformed data degrades to no history.
func (s *CompletionService) LoadAll(ctx context.Context) []domain.StudyCompletion {
	completions, err := s.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorruptCollection) {
			s.logger.Warn("ignoring corrupt completion collection", logging.Key(domain.CollectionKey), logging.Error(err))
		} else {
			s.logger.Error("completion collection unavailable", logging.Key(domain.CollectionKey), logging.Error(err))
		}
		return []domain.StudyCompletion{}
	}
	return completions
}

func (s *CompletionService) Summary(ctx context.Context, windowDays int) domain.Summary {
	return domain.Summarize(s.LoadAll(ctx), windowDays, s.clock.Now())
}

// History returns the newest limit completions in insertion order. A
// non-positive limit returns everything.
func (s *CompletionService) History(ctx context.Context, limit int) []domain.StudyCompletion {
	completions := s.LoadAll(ctx)
	if limit > 0 && len(completions) > limit {
		completions = completions[len(completions)-limit:]
	}
	return completions
}
