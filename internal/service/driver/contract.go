//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModifyEntity entities.DriverModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	GetAll(ctx context.Context, availableOnly bool) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
}

type LocationStore interface {
	SetLocation(ctx context.Context, location entities.DriverLocation) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
