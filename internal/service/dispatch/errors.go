package dispatch

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidDriverID = errors.New("invalid driver id")

	ErrOrderNotFound          = errors.New("order not found")
	ErrOfferNotFound          = errors.New("no pending offer for driver")
	ErrOrderNoLongerAvailable = errors.New("order no longer available")
	ErrOfferConflict          = errors.New("order already has a pending offer")
	ErrLocationUnknown        = errors.New("driver location unknown")
)
