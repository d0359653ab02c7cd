//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_get_test
package driver_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDriver(ctx context.Context, id string) (*entities.Driver, error)
}
