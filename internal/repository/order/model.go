package order

import "time"

type OrderDB struct {
	ID               string
	RestaurantName   string
	PickupAddress    string
	DropoffAddress   string
	PickupLat        float64
	PickupLng        float64
	DropoffLat       float64
	DropoffLng       float64
	PayoutCents      int64
	DistanceKm       float64
	Status           string
	AssignedCraverID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
