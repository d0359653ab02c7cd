package entities

import "time"

type Coord struct {
	Lat float64
	Lng float64
}

type Order struct {
	ID               string
	RestaurantName   string
	PickupAddress    string
	DropoffAddress   string
	Pickup           Coord
	Dropoff          Coord
	PayoutCents      int64
	DistanceKm       float64
	Status           OrderStatusType
	AssignedCraverID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAssigned  OrderStatusType = "assigned"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal сообщает, что заказ больше не меняет статус.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderModify struct {
	ID               *string
	RestaurantName   *string
	PickupAddress    *string
	DropoffAddress   *string
	Pickup           *Coord
	Dropoff          *Coord
	PayoutCents      *int64
	DistanceKm       *float64
	Status           *OrderStatusType
	AssignedCraverID *string
}
