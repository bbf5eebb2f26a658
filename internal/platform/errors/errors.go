package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrNoActiveWorkout    = errors.New("no active workout")
	ErrLegalNotAccepted   = errors.New("legal notice not accepted")
	ErrNoExpandedExercise = errors.New("no exercise expanded")
)
