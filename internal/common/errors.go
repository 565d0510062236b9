package common

import "errors"

var (
	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidSession   = errors.New("invalid persisted session")

	// Submission errors.
	ErrMissingResetToken  = errors.New("reset token missing from query string")
	ErrSubmissionInFlight = errors.New("submission already in flight")
)
