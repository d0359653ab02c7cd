package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, first_name, last_name, email, online, accepting_orders, rating, level, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (string, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	query := `INSERT INTO drivers (first_name, last_name, email, online, accepting_orders, rating, level)
		VALUES ($1, $2, $3, COALESCE($4, FALSE), COALESCE($5, FALSE), COALESCE($6, 5.0), COALESCE($7, 1))
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.FirstName,
		driverModifyModel.LastName,
		driverModifyModel.Email,
		driverModifyModel.Online,
		driverModifyModel.AcceptingOrders,
		driverModifyModel.Rating,
		driverModifyModel.Level,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", driver.ErrConflict
		}
		return "", fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.FirstName != nil {
		builder = builder.Set("first_name", driverModifyModel.FirstName)
	}
	if driverModifyModel.LastName != nil {
		builder = builder.Set("last_name", driverModifyModel.LastName)
	}
	if driverModifyModel.Email != nil {
		builder = builder.Set("email", driverModifyModel.Email)
	}
	if driverModifyModel.Online != nil {
		builder = builder.Set("online", driverModifyModel.Online)
	}
	if driverModifyModel.AcceptingOrders != nil {
		builder = builder.Set("accepting_orders", driverModifyModel.AcceptingOrders)
	}
	if driverModifyModel.Rating != nil {
		builder = builder.Set("rating", driverModifyModel.Rating)
	}
	if driverModifyModel.Level != nil {
		builder = builder.Set("level", driverModifyModel.Level)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&driverModel.ID,
			&driverModel.FirstName,
			&driverModel.LastName,
			&driverModel.Email,
			&driverModel.Online,
			&driverModel.AcceptingOrders,
			&driverModel.Rating,
			&driverModel.Level,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.FirstName,
			&driverModel.LastName,
			&driverModel.Email,
			&driverModel.Online,
			&driverModel.AcceptingOrders,
			&driverModel.Rating,
			&driverModel.Level,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context, availableOnly bool) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers`
	if availableOnly {
		query += `
		WHERE online = TRUE AND accepting_orders = TRUE`
	}
	query += `
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.FirstName,
			&driverModel.LastName,
			&driverModel.Email,
			&driverModel.Online,
			&driverModel.AcceptingOrders,
			&driverModel.Rating,
			&driverModel.Level,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driverModels), nil
}
