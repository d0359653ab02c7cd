//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_test
package queue

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type WaitlistRepository interface {
	Create(ctx context.Context, entry entities.WaitlistEntry) (*entities.WaitlistEntry, error)
	ListWaiting(ctx context.Context) ([]entities.WaitlistEntry, error)
	ListTopWaitingByRegion(ctx context.Context, regionID string, limit int) ([]entities.WaitlistEntry, error)
	UpdatePriorityScore(ctx context.Context, id string, score int) error
	Approve(ctx context.Context, ids []string) (int64, error)
	ResetExpiredInvitations(ctx context.Context, olderThan time.Time) (int64, error)
	CountActiveByRegion(ctx context.Context, regionID string) (int, error)
	SumCompletedReferralPoints(ctx context.Context, referrerID string) (int, error)
}

type RegionRepository interface {
	GetAll(ctx context.Context) ([]entities.Region, error)
	SetLastPromotedAt(ctx context.Context, regionID string, at time.Time) error
}

// BatchLocker сериализует запуски обслуживания очереди между
// процессами; блокировка живёт в рамках текущей транзакции.
type BatchLocker interface {
	TryLock(ctx context.Context) (bool, error)
}

type Mailer interface {
	SendActivation(ctx context.Context, entry entities.WaitlistEntry) error
	SendUpcomingActivation(ctx context.Context, entry entities.WaitlistEntry, regionName string) error
}

type ScoreFactory interface {
	CalculateScore(points int, enrolledAt, now time.Time, referralPoints int) int
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
