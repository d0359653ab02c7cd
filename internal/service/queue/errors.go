package queue

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRegionID       = errors.New("invalid region id")

	ErrAlreadyEnrolled = errors.New("driver already enrolled")
	ErrEntryNotFound   = errors.New("waitlist entry not found")
)
