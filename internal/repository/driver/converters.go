package driver

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:              d.ID,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Online:          d.Online,
		AcceptingOrders: d.AcceptingOrders,
		Rating:          d.Rating,
		Level:           d.Level,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}

	return &DriverModifyDB{
		ID:              driverModify.ID,
		FirstName:       driverModify.FirstName,
		LastName:        driverModify.LastName,
		Email:           driverModify.Email,
		Online:          driverModify.Online,
		AcceptingOrders: driverModify.AcceptingOrders,
		Rating:          driverModify.Rating,
		Level:           driverModify.Level,
	}
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
