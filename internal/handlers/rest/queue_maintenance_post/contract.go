//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_maintenance_post_test
package queue_maintenance_post

import (
	"context"

	"dispatch/internal/service/queue"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RunMaintenance(ctx context.Context) (*queue.MaintenanceReport, error)
}
