package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
)

const offerColumns = `id, order_id, driver_id, status, expires_at, response_time_seconds, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderID, driverID string, expiresAt time.Time) (*entities.Offer, error) {
	query := `INSERT INTO order_assignments (order_id, driver_id, status, expires_at)
		VALUES ($1, $2, 'pending', $3)
		RETURNING ` + offerColumns

	var offerModel OfferDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID, expiresAt).
		Scan(
			&offerModel.ID,
			&offerModel.OrderID,
			&offerModel.DriverID,
			&offerModel.Status,
			&offerModel.ExpiresAt,
			&offerModel.ResponseTimeSeconds,
			&offerModel.CreatedAt,
		)
	if err != nil {
		// частичный уникальный индекс: не больше одного pending на заказ
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrOfferConflict
		}
		return nil, fmt.Errorf("unexpected offer repository create error: %w", err)
	}

	return ToDomain(&offerModel), nil
}

func (r *Repository) GetOpenByOrderID(ctx context.Context, orderID string) (*entities.Offer, error) {
	query := `SELECT ` + offerColumns + `
		FROM order_assignments
		WHERE order_id = $1
		  AND status = 'pending'
		  AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1`

	var offerModel OfferDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&offerModel.ID,
			&offerModel.OrderID,
			&offerModel.DriverID,
			&offerModel.Status,
			&offerModel.ExpiresAt,
			&offerModel.ResponseTimeSeconds,
			&offerModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository get open error: %w", err)
	}

	return ToDomain(&offerModel), nil
}

func (r *Repository) GetOfferedDriverIDs(ctx context.Context, orderID string) ([]string, error) {
	query := `SELECT driver_id
		FROM order_assignments
		WHERE order_id = $1`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository get offered drivers error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 4)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected offer repository get offered drivers error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected offer repository get offered drivers error: %w", err)
	}

	return ids, nil
}

// MarkAccepted переводит pending-оффер в accepted только пока не вышел
// дедлайн; время реакции фиксируется на стороне БД.
func (r *Repository) MarkAccepted(ctx context.Context, orderID, driverID string) (*entities.Offer, error) {
	query := `UPDATE order_assignments
		SET status = 'accepted',
			response_time_seconds = EXTRACT(EPOCH FROM (NOW() - created_at))::int
		WHERE order_id = $1
		  AND driver_id = $2
		  AND status = 'pending'
		  AND expires_at > NOW()
		RETURNING ` + offerColumns

	return r.scanUpdatedOffer(ctx, query, orderID, driverID)
}

func (r *Repository) MarkDeclined(ctx context.Context, orderID, driverID string) (*entities.Offer, error) {
	query := `UPDATE order_assignments
		SET status = 'declined',
			response_time_seconds = EXTRACT(EPOCH FROM (NOW() - created_at))::int
		WHERE order_id = $1
		  AND driver_id = $2
		  AND status = 'pending'
		RETURNING ` + offerColumns

	return r.scanUpdatedOffer(ctx, query, orderID, driverID)
}

func (r *Repository) SupersedeOthers(ctx context.Context, orderID, winnerDriverID string) (int64, error) {
	query := `UPDATE order_assignments
		SET status = 'superseded'
		WHERE order_id = $1
		  AND driver_id != $2
		  AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, orderID, winnerDriverID)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository supersede error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) SupersedeByOrder(ctx context.Context, orderID string) (int64, error) {
	query := `UPDATE order_assignments
		SET status = 'superseded'
		WHERE order_id = $1
		  AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository supersede by order error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ExpireOverdue(ctx context.Context) (int64, error) {
	query := `UPDATE order_assignments
		SET status = 'expired'
		WHERE status = 'pending'
		  AND expires_at <= NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository expire overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) scanUpdatedOffer(ctx context.Context, query, orderID, driverID string) (*entities.Offer, error) {
	var offerModel OfferDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID).
		Scan(
			&offerModel.ID,
			&offerModel.OrderID,
			&offerModel.DriverID,
			&offerModel.Status,
			&offerModel.ExpiresAt,
			&offerModel.ResponseTimeSeconds,
			&offerModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	return ToDomain(&offerModel), nil
}
