package driver

import "time"

type DriverDB struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Online          bool
	AcceptingOrders bool
	Rating          float64
	Level           int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DriverModifyDB struct {
	ID              *string
	FirstName       *string
	LastName        *string
	Email           *string
	Online          *bool
	AcceptingOrders *bool
	Rating          *float64
	Level           *int
}
