package queue_maintenance

import (
	"context"
	"time"

	"dispatch/internal/service/queue"
	"dispatch/pkg/logger"
)

type Service interface {
	RunMaintenance(ctx context.Context) (*queue.MaintenanceReport, error)
}

type QueueMaintenance struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewQueueMaintenance(log logger.Logger, service Service, interval time.Duration) *QueueMaintenance {
	return &QueueMaintenance{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (q *QueueMaintenance) TTL() time.Duration {
	return q.interval
}

func (q *QueueMaintenance) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, q.interval)
	defer cancel()

	report, err := q.service.RunMaintenance(ctxWithTimeout)
	if err != nil {
		return err
	}

	if report.Skipped {
		q.log.Info("queue maintenance skipped, another run holds the lock")
		return nil
	}

	q.log.With(
		logger.NewField("scores_updated", report.ScoresUpdated),
		logger.NewField("promoted", report.Promoted),
		logger.NewField("upcoming_notified", report.UpcomingNotified),
		logger.NewField("invitations_reset", report.InvitationsReset),
	).Info("queue maintenance")

	return nil
}

func (q *QueueMaintenance) Info() string {
	return "queue maintenance"
}
