package entities

import "time"

type Driver struct {
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

const (
	DriverMinRating = 0.0
	DriverMaxRating = 5.0
	DriverMinLevel  = 1
)

type DriverModify struct {
	ID              *string
	FirstName       *string
	LastName        *string
	Email           *string
	Online          *bool
	AcceptingOrders *bool
	Rating          *float64
	Level           *int
}

// DriverLocation хранит только последнюю известную позицию, без истории.
type DriverLocation struct {
	DriverID   string
	Lat        float64
	Lng        float64
	RecordedAt time.Time
}
