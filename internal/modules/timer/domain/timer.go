package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "sabibi/internal/platform/errors"
)

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseStudy    Phase = "study"
	PhaseBreak    Phase = "break"
	PhaseFinished Phase = "finished"
)

type EventKind string

const (
	EventStudyCompleted EventKind = "study_completed"
	EventBreakCompleted EventKind = "break_completed"
	EventFinished       EventKind = "finished"
)

// Plan is what a run executes: a preset's durations repeated Cycles times.
type Plan struct {
	Label        string
	StudyMinutes int
	BreakMinutes int
	Cycles       int
}

func (p Plan) Validate() error {
	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("%w: plan label is required", apperrors.ErrInvalidInput)
	}
	if p.StudyMinutes <= 0 {
		return fmt.Errorf("%w: study minutes must be positive", apperrors.ErrInvalidInput)
	}
	if p.BreakMinutes < 0 {
		return fmt.Errorf("%w: break minutes must not be negative", apperrors.ErrInvalidInput)
	}
	if p.Cycles < 0 {
		return fmt.Errorf("%w: cycles must not be negative", apperrors.ErrInvalidInput)
	}
	return nil
}

type Event struct {
	Kind         EventKind
	Cycle        int
	StudyMinutes int
	At           time.Time
}

type Snapshot struct {
	Label         string
	Phase         Phase
	Paused        bool
	Cycle         int
	Cycles        int
	PhaseDuration time.Duration
	Remaining     time.Duration
}

// Progress is the elapsed share of the current phase in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.PhaseDuration <= 0 {
		return 0
	}
	done := float64(s.PhaseDuration-s.Remaining) / float64(s.PhaseDuration)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

// Timer is a pomodoro state machine. It never reads the clock itself; every
// transition is driven by the instant passed in.
type Timer struct {
	plan       Plan
	phase      Phase
	phaseStart time.Time
	pausedAt   time.Time
	paused     bool
	pausedFor  time.Duration
	completed  int
}

func New() *Timer {
	return &Timer{phase: PhaseIdle}
}

func (t *Timer) Phase() Phase { return t.phase }

func (t *Timer) Running() bool {
	return t.phase == PhaseStudy || t.phase == PhaseBreak
}

func (t *Timer) Start(plan Plan, now time.Time) error {
	if t.Running() {
		return apperrors.ErrTimerRunning
	}
	if err := plan.Validate(); err != nil {
		return err
	}
	if plan.Cycles == 0 {
		plan.Cycles = 1
	}
	*t = Timer{plan: plan, phase: PhaseStudy, phaseStart: now}
	return nil
}

func (t *Timer) Pause(now time.Time) error {
	if !t.Running() {
		return apperrors.ErrTimerNotRunning
	}
	if !t.paused {
		t.paused = true
		t.pausedAt = now
	}
	return nil
}

func (t *Timer) Resume(now time.Time) error {
	if !t.Running() {
		return apperrors.ErrTimerNotRunning
	}
	if t.paused {
		t.pausedFor += now.Sub(t.pausedAt)
		t.paused = false
	}
	return nil
}

func (t *Timer) Paused() bool { return t.paused }

// Completed counts fully finished study+break cycles.
func (t *Timer) Completed() int { return t.completed }

func (t *Timer) Reset() {
	*t = Timer{phase: PhaseIdle}
}

// Tick advances the timer to now and returns the transitions that happened,
// in order. Several phases may elapse in one call after a long gap.
func (t *Timer) Tick(now time.Time) []Event {
	if !t.Running() || t.paused {
		return nil
	}
	var events []Event
	for t.Running() {
		duration := t.phaseDuration()
		end := t.phaseStart.Add(t.pausedFor + duration)
		if now.Before(end) {
			break
		}
		events = append(events, t.advance(end)...)
	}
	return events
}

func (t *Timer) advance(end time.Time) []Event {
	t.phaseStart = end
	t.pausedFor = 0

	var events []Event
	if t.phase == PhaseStudy {
		events = append(events, Event{Kind: EventStudyCompleted, Cycle: t.completed + 1, StudyMinutes: t.plan.StudyMinutes, At: end})
		if t.plan.BreakMinutes > 0 {
			t.phase = PhaseBreak
			return events
		}
	} else {
		events = append(events, Event{Kind: EventBreakCompleted, Cycle: t.completed + 1, At: end})
	}

	t.completed++
	if t.completed >= t.plan.Cycles {
		t.phase = PhaseFinished
		events = append(events, Event{Kind: EventFinished, Cycle: t.completed, At: end})
		return events
	}
	t.phase = PhaseStudy
	return events
}

func (t *Timer) phaseDuration() time.Duration {
	switch t.phase {
	case PhaseStudy:
		return time.Duration(t.plan.StudyMinutes) * time.Minute
	case PhaseBreak:
		return time.Duration(t.plan.BreakMinutes) * time.Minute
	default:
		return 0
	}
}

func (t *Timer) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Label:  t.plan.Label,
		Phase:  t.phase,
		Paused: t.paused,
		Cycles: t.plan.Cycles,
		Cycle:  t.completed,
	}
	if !t.Running() {
		return snap
	}
	snap.Cycle = t.completed + 1
	snap.PhaseDuration = t.phaseDuration()
	at := now
	if t.paused {
		at = t.pausedAt
	}
	elapsed := at.Sub(t.phaseStart) - t.pausedFor
	remaining := snap.PhaseDuration - elapsed
	if remaining < 0 {
		remaining = 0
	}
	if remaining > snap.PhaseDuration {
		remaining = snap.PhaseDuration
	}
	snap.Remaining = remaining
	return snap
}
