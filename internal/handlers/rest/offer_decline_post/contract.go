//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_decline_post_test
package offer_decline_post

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
	DeclineOffer(ctx context.Context, orderID, driverID string) error
}
