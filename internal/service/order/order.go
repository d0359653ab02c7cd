package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

type Service struct {
	repository    Repository
	statusFactory HandlerFactory
}

func New(repository Repository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

// ProcessOrderEvent обрабатывает событие жизненного цикла заказа из
// брокера. Новый заказ сначала сохраняется, затем статус уходит в
// фабрику обработчиков.
func (s *Service) ProcessOrderEvent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required: %w", ErrMissingRequiredFields)
	}

	if *orderModify.Status == entities.OrderPending {
		if err := s.createOrder(ctx, orderModify); err != nil {
			return nil, err
		}
	}

	executeFn, err := s.statusFactory.GetHandler(*orderModify.Status)
	if err != nil {
		// решение "пропустить и залогировать" принимает потребитель
		return nil, err
	}

	if err := executeFn(ctx, *orderModify.ID); err != nil {
		return nil, err
	}

	return s.repository.GetByID(ctx, *orderModify.ID)
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order id is required: %w", ErrMissingRequiredFields)
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *Service) createOrder(ctx context.Context, orderModify entities.OrderModify) error {
	if orderModify.Pickup == nil ||
		orderModify.Dropoff == nil ||
		orderModify.PayoutCents == nil ||
		orderModify.RestaurantName == nil {
		return fmt.Errorf("new order payload incomplete: %w", ErrMissingRequiredFields)
	}

	newOrder := entities.Order{
		ID:             *orderModify.ID,
		RestaurantName: *orderModify.RestaurantName,
		Pickup:         *orderModify.Pickup,
		Dropoff:        *orderModify.Dropoff,
		PayoutCents:    *orderModify.PayoutCents,
		DistanceKm:     geo.DistanceKm(*orderModify.Pickup, *orderModify.Dropoff),
		Status:         entities.OrderPending,
	}
	if orderModify.PickupAddress != nil {
		newOrder.PickupAddress = *orderModify.PickupAddress
	}
	if orderModify.DropoffAddress != nil {
		newOrder.DropoffAddress = *orderModify.DropoffAddress
	}

	_, err := s.repository.Create(ctx, newOrder)
	if err != nil {
		// повторная доставка события о создании не считается сбоем
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}
