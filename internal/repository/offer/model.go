package offer

import "time"

type OfferDB struct {
	ID                  int64
	OrderID             string
	DriverID            string
	Status              string
	ExpiresAt           time.Time
	ResponseTimeSeconds *int
	CreatedAt           time.Time
}
