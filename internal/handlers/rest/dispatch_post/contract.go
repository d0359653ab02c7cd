//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_post_test
package dispatch_post

import (
	"context"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Dispatch(ctx context.Context, orderID string) (*dispatch.Result, error)
}
