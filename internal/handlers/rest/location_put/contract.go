//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_put_test
package location_put

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordLocation(ctx context.Context, driverID string, lat, lng float64) error
}
