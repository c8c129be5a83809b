package models

import "errors"

var (
	// ErrValidation wraps all creation-time field validation failures.
	ErrValidation = errors.New("validation error")

	// ErrDrawNotFound is returned when the referenced draw does not exist.
	ErrDrawNotFound = errors.New("draw not found")

	// ErrDrawNotAcceptingEntries is returned when an entry targets a draw
	// that is not active or is outside its date window.
	ErrDrawNotAcceptingEntries = errors.New("draw is not accepting entries")

	// ErrDuplicateEntry is returned when a customer already holds an entry
	// for the draw. Terminal for that customer; callers must not retry.
	ErrDuplicateEntry = errors.New("customer has already entered this draw")

	// ErrAlreadyCompleted is returned when winner selection is requested for
	// a draw whose winners were already picked.
	ErrAlreadyCompleted = errors.New("winners already picked")

	// ErrEmptyPool is returned when a draw has no entries to pick from.
	ErrEmptyPool = errors.New("no entries to pick from")

	// ErrInvalidTransition is returned for a status update that is not a
	// legal forward move in the draw lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)
