package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
)

const orderColumns = `id, restaurant_name, pickup_address, dropoff_address,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
		payout_cents, distance_km, status, assigned_craver_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, restaurant_name, pickup_address, dropoff_address,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			payout_cents, distance_km, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.RestaurantName,
		orderEntity.PickupAddress,
		orderEntity.DropoffAddress,
		orderEntity.Pickup.Lat,
		orderEntity.Pickup.Lng,
		orderEntity.Dropoff.Lat,
		orderEntity.Dropoff.Lng,
		orderEntity.PayoutCents,
		orderEntity.DistanceKm,
		orderEntity.Status.String(),
	).Scan(
		&orderModel.ID,
		&orderModel.RestaurantName,
		&orderModel.PickupAddress,
		&orderModel.DropoffAddress,
		&orderModel.PickupLat,
		&orderModel.PickupLng,
		&orderModel.DropoffLat,
		&orderModel.DropoffLng,
		&orderModel.PayoutCents,
		&orderModel.DistanceKm,
		&orderModel.Status,
		&orderModel.AssignedCraverID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.RestaurantName,
			&orderModel.PickupAddress,
			&orderModel.DropoffAddress,
			&orderModel.PickupLat,
			&orderModel.PickupLng,
			&orderModel.DropoffLat,
			&orderModel.DropoffLng,
			&orderModel.PayoutCents,
			&orderModel.DistanceKm,
			&orderModel.Status,
			&orderModel.AssignedCraverID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Claim - условная запись, на которой держится вся гонка принятия:
// заказ уходит ровно одному водителю, остальные получают отказ.
func (r *Repository) Claim(ctx context.Context, orderID, driverID string) error {
	query := `UPDATE orders
		SET status = 'assigned',
			assigned_craver_id = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, orderID, driverID)
	if err != nil {
		return fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrOrderNoLongerAvailable
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) error {
	query := `UPDATE orders
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2`

	result, err := r.querier.Exec(ctx, query, orderID, from.String(), to.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrStatusMismatch
	}

	return nil
}

func (r *Repository) Cancel(ctx context.Context, orderID string) error {
	query := `UPDATE orders
		SET status = 'cancelled',
			updated_at = NOW()
		WHERE id = $1
		  AND status IN ('pending', 'assigned')`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrStatusMismatch
	}

	return nil
}

func (r *Repository) ListPendingIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id
		FROM orders
		WHERE status = 'pending'
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	return ids, nil
}
