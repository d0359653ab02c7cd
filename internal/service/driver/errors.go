package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrInvalidLevel          = errors.New("invalid level")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("resource already exists")
)
