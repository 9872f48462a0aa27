package dto

import "time"

type RunInput struct {
	Preset string
	Cycles int
}

type StartInput struct {
	Preset string
	Cycles int
}

type TickOutput struct {
	Label         string
	Phase         string
	Paused        bool
	Cycle         int
	Cycles        int
	PhaseDuration time.Duration
	Remaining     time.Duration
	Progress      float64
	// StudyCompleted lists the minutes of study intervals that ended during
	// this tick.
	StudyCompleted []int
	Finished       bool
}

type RunOutput struct {
	Label           string
	CompletedCycles int
	RecordedMinutes int
	Recorded        int
}
