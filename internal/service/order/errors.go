package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUndefinedStatus       = errors.New("undefined order status")
	ErrStatusMismatch        = errors.New("order status does not allow this transition")
	ErrConflict              = errors.New("order already exists")
)
