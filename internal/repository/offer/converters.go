package offer

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OfferDB) *entities.Offer {
	if o == nil {
		return nil
	}

	return &entities.Offer{
		ID:                  o.ID,
		OrderID:             o.OrderID,
		DriverID:            o.DriverID,
		Status:              entities.OfferStatusType(o.Status),
		ExpiresAt:           o.ExpiresAt,
		ResponseTimeSeconds: o.ResponseTimeSeconds,
		CreatedAt:           o.CreatedAt,
	}
}
