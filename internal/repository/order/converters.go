package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:               o.ID,
		RestaurantName:   o.RestaurantName,
		PickupAddress:    o.PickupAddress,
		DropoffAddress:   o.DropoffAddress,
		Pickup:           entities.Coord{Lat: o.PickupLat, Lng: o.PickupLng},
		Dropoff:          entities.Coord{Lat: o.DropoffLat, Lng: o.DropoffLng},
		PayoutCents:      o.PayoutCents,
		DistanceKm:       o.DistanceKm,
		Status:           entities.OrderStatusType(o.Status),
		AssignedCraverID: o.AssignedCraverID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
