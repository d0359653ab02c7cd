package waitlist

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/queue"
)

// ключ advisory-блокировки обслуживания очереди, общий для всех
// экземпляров сервиса
const maintenanceLockKey = 824001

const entryColumns = `id, first_name, last_name, email, region_id, points, priority_score, status, enrolled_at, invited_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, entry entities.WaitlistEntry) (*entities.WaitlistEntry, error) {
	query := `INSERT INTO craver_applications
			(first_name, last_name, email, region_id, points, priority_score, status, enrolled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + entryColumns

	var entryModel WaitlistEntryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.FirstName,
		entry.LastName,
		entry.Email,
		entry.RegionID,
		entry.Points,
		entry.PriorityScore,
		entry.Status.String(),
		entry.EnrolledAt,
	).Scan(
		&entryModel.ID,
		&entryModel.FirstName,
		&entryModel.LastName,
		&entryModel.Email,
		&entryModel.RegionID,
		&entryModel.Points,
		&entryModel.PriorityScore,
		&entryModel.Status,
		&entryModel.EnrolledAt,
		&entryModel.InvitedAt,
		&entryModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, queue.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("unexpected waitlist repository create error: %w", err)
	}

	return ToDomain(&entryModel), nil
}

func (r *Repository) ListWaiting(ctx context.Context) ([]entities.WaitlistEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM craver_applications
		WHERE status = 'waitlist'
		ORDER BY id`

	return r.queryEntries(ctx, query)
}

func (r *Repository) ListTopWaitingByRegion(ctx context.Context, regionID string, limit int) ([]entities.WaitlistEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM craver_applications
		WHERE status = 'waitlist'
		  AND region_id = $1
		ORDER BY priority_score DESC, enrolled_at ASC
		LIMIT $2`

	return r.queryEntries(ctx, query, regionID, limit)
}

func (r *Repository) UpdatePriorityScore(ctx context.Context, id string, score int) error {
	query := `UPDATE craver_applications
		SET priority_score = $2,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, score)
	if err != nil {
		return fmt.Errorf("unexpected waitlist repository update score error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return queue.ErrEntryNotFound
	}

	return nil
}

// Approve активирует кандидатов из листа ожидания: с этого момента
// они занимают слоты квоты региона.
func (r *Repository) Approve(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `UPDATE craver_applications
		SET status = 'approved',
			updated_at = NOW()
		WHERE id = ANY($1)
		  AND status = 'waitlist'`

	result, err := r.querier.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("unexpected waitlist repository approve error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ResetExpiredInvitations(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `UPDATE craver_applications
		SET status = 'waitlist',
			invited_at = NULL,
			updated_at = NOW()
		WHERE status = 'invited'
		  AND invited_at < $1`

	result, err := r.querier.Exec(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("unexpected waitlist repository reset invitations error: %w", err)
	}

	return result.RowsAffected(), nil
}

// CountActiveByRegion считает активированных водителей региона —
// только они занимают слоты квоты.
func (r *Repository) CountActiveByRegion(ctx context.Context, regionID string) (int, error) {
	query := `SELECT COUNT(*)
		FROM craver_applications
		WHERE region_id = $1
		  AND status = 'approved'`

	var count int
	err := r.querier.QueryRow(ctx, query, regionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected waitlist repository count active error: %w", err)
	}

	return count, nil
}

func (r *Repository) SumCompletedReferralPoints(ctx context.Context, referrerID string) (int, error) {
	query := `SELECT COALESCE(SUM(points_awarded), 0)
		FROM driver_referrals
		WHERE referrer_id = $1
		  AND status = 'completed'`

	var sum int
	err := r.querier.QueryRow(ctx, query, referrerID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected waitlist repository sum referrals error: %w", err)
	}

	return sum, nil
}

// TryLock берёт advisory-блокировку на время текущей транзакции.
// Второй одновременный запуск обслуживания получает false и выходит.
func (r *Repository) TryLock(ctx context.Context) (bool, error) {
	query := `SELECT pg_try_advisory_xact_lock($1)`

	var locked bool
	err := r.querier.QueryRow(ctx, query, maintenanceLockKey).Scan(&locked)
	if err != nil {
		return false, fmt.Errorf("unexpected waitlist repository try lock error: %w", err)
	}

	return locked, nil
}

func (r *Repository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]entities.WaitlistEntry, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected waitlist repository query error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]WaitlistEntryDB, 0, 8)
	for rows.Next() {
		var entryModel WaitlistEntryDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.FirstName,
			&entryModel.LastName,
			&entryModel.Email,
			&entryModel.RegionID,
			&entryModel.Points,
			&entryModel.PriorityScore,
			&entryModel.Status,
			&entryModel.EnrolledAt,
			&entryModel.InvitedAt,
			&entryModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected waitlist repository query error: %w", err)
		}
		entryModels = append(entryModels, entryModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected waitlist repository query error: %w", err)
	}

	return ToDomainList(entryModels), nil
}
