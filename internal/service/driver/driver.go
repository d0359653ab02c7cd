package driver

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Driver struct {
	repository Repository
	locations  LocationStore
	txManager  TxManager
}

func New(repository Repository, locations LocationStore, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		locations:  locations,
		txManager:  txManager,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (string, error) {
	if driverModify.FirstName == nil ||
		driverModify.LastName == nil ||
		driverModify.Email == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.FirstName) || !isValidName(*driverModify.LastName) {
		return "", ErrInvalidName
	}
	if !isValidEmail(*driverModify.Email) {
		return "", ErrInvalidEmail
	}
	if driverModify.Rating != nil && !isValidRating(*driverModify.Rating) {
		return "", ErrInvalidRating
	}
	if driverModify.Level != nil && !isValidLevel(*driverModify.Level) {
		return "", ErrInvalidLevel
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return "", fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || !isValidID(*driverModify.ID) {
		return nil, ErrInvalidDriverID
	}

	if driverModify.FirstName == nil &&
		driverModify.LastName == nil &&
		driverModify.Email == nil &&
		driverModify.Online == nil &&
		driverModify.AcceptingOrders == nil &&
		driverModify.Rating == nil &&
		driverModify.Level == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.FirstName != nil && !isValidName(*driverModify.FirstName) {
		return nil, ErrInvalidName
	}
	if driverModify.LastName != nil && !isValidName(*driverModify.LastName) {
		return nil, ErrInvalidName
	}
	if driverModify.Email != nil && !isValidEmail(*driverModify.Email) {
		return nil, ErrInvalidEmail
	}
	if driverModify.Rating != nil && !isValidRating(*driverModify.Rating) {
		return nil, ErrInvalidRating
	}
	if driverModify.Level != nil && !isValidLevel(*driverModify.Level) {
		return nil, ErrInvalidLevel
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id string) (*entities.Driver, error) {
	if !isValidID(id) {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context, availableOnly bool) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

// GetAvailableDrivers возвращает водителей онлайн и готовых брать заказы.
func (s *Driver) GetAvailableDrivers(ctx context.Context) ([]entities.Driver, error) {
	return s.GetDrivers(ctx, true)
}

func (s *Driver) RecordLocation(ctx context.Context, driverID string, lat, lng float64) error {
	if !isValidID(driverID) {
		return ErrInvalidDriverID
	}
	if !isValidCoordinates(lat, lng) {
		return ErrInvalidCoordinates
	}

	location := entities.DriverLocation{
		DriverID:   driverID,
		Lat:        lat,
		Lng:        lng,
		RecordedAt: time.Now().UTC(),
	}

	if err := s.locations.SetLocation(ctx, location); err != nil {
		return fmt.Errorf("record driver location: %w", err)
	}
	return nil
}

func (s *Driver) SetPresence(ctx context.Context, driverID string, online, acceptingOrders bool) (*entities.Driver, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	driverModify := entities.DriverModify{
		ID:              &driverID,
		Online:          &online,
		AcceptingOrders: &acceptingOrders,
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver presence: %w", err)
	}
	return driver, nil
}
