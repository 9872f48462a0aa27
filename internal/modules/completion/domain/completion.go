package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "sabibi/internal/platform/errors"
)

const (
	// CollectionKey is the single storage key holding every completion.
	CollectionKey = "sabibi-timer-completions"

	DateLayout        = "2006-01-02"
	DefaultWindowDays = 14
)

// StudyCompletion is one finished study interval. Records are append-only.
type StudyCompletion struct {
	Date         string `json:"date"`
	StudyMinutes int    `json:"studyMinutes"`
}

// DateKey formats t as a calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func NewCompletion(at time.Time, studyMinutes int) (StudyCompletion, error) {
	if studyMinutes <= 0 {
		return StudyCompletion{}, fmt.Errorf("%w: study minutes must be positive, got %d", apperrors.ErrInvalidInput, studyMinutes)
	}
	return StudyCompletion{Date: DateKey(at), StudyMinutes: studyMinutes}, nil
}

// DecodeCollection parses a persisted collection. Empty input means no data.
// Anything that is not a JSON array of completions yields ErrCorruptCollection,
// including an array with a single malformed element.
func DecodeCollection(raw []byte) ([]StudyCompletion, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []StudyCompletion{}, nil
	}
	if trimmed[0] != '[' {
		return []StudyCompletion{}, fmt.Errorf("%w: value is not an array", apperrors.ErrCorruptCollection)
	}
	completions := []StudyCompletion{}
	if err := json.Unmarshal(trimmed, &completions); err != nil {
		return []StudyCompletion{}, fmt.Errorf("%w: %v", apperrors.ErrCorruptCollection, err)
	}
	for i, c := range completions {
		if err := c.validate(); err != nil {
			return []StudyCompletion{}, fmt.Errorf("%w: element %d: %v", apperrors.ErrCorruptCollection, i, err)
		}
	}
	return completions, nil
}

func (c StudyCompletion) validate() error {
	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return fmt.Errorf("bad date %q", c.Date)
	}
	if c.StudyMinutes <= 0 {
		return fmt.Errorf("non-positive study minutes %d", c.StudyMinutes)
	}
	return nil
}

func EncodeCollection(completions []StudyCompletion) ([]byte, error) {
	if completions == nil {
		completions = []StudyCompletion{}
	}
	payload, err := json.Marshal(completions)
	if err != nil {
		return nil, fmt.Errorf("encode completions: %w", err)
	}
	return payload, nil
}
