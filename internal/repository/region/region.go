package region

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type RegionDB struct {
	ID             string
	Name           string
	ActiveQuota    int
	Status         string
	LastPromotedAt *time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Region, error) {
	query := `SELECT id, name, active_quota, status, last_promoted_at
		FROM regions
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected region repository getall error: %w", err)
	}
	defer rows.Close()

	regions := make([]entities.Region, 0, 8)
	for rows.Next() {
		var regionModel RegionDB
		err := rows.Scan(
			&regionModel.ID,
			&regionModel.Name,
			&regionModel.ActiveQuota,
			&regionModel.Status,
			&regionModel.LastPromotedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected region repository getall error: %w", err)
		}

		regions = append(regions, entities.Region{
			ID:             regionModel.ID,
			Name:           regionModel.Name,
			ActiveQuota:    regionModel.ActiveQuota,
			Status:         entities.RegionStatusType(regionModel.Status),
			LastPromotedAt: regionModel.LastPromotedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected region repository getall error: %w", err)
	}

	return regions, nil
}

func (r *Repository) SetLastPromotedAt(ctx context.Context, regionID string, at time.Time) error {
	query := `UPDATE regions
		SET last_promoted_at = $2
		WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, regionID, at)
	if err != nil {
		return fmt.Errorf("unexpected region repository set promoted at error: %w", err)
	}

	return nil
}
