package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrCorruptCollection = errors.New("corrupt completion collection")
	ErrUnknownRoute      = errors.New("unknown route")
	ErrTimerRunning      = errors.New("timer already running")
	ErrTimerNotRunning   = errors.New("timer is not running")
)
