package membership

import "errors"

var (
	// ErrInvalidInput reports malformed or out-of-range arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTransition reports a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid membership transition")
	// ErrOverflow reports that the membership number sequence no longer fits its fixed width.
	ErrOverflow = errors.New("membership number overflow")
	// ErrConcurrencyConflict reports a lost optimistic-lock race or a duplicate number;
	// the caller should re-read and retry.
	ErrConcurrencyConflict = errors.New("membership concurrency conflict")
	ErrNotFound            = errors.New("membership not found")
)
