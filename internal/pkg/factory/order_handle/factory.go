package order_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

type StatusHandlerFactory struct {
	orders     order.Repository
	offers     order.OfferRepository
	dispatcher order.DispatchService
	txManager  order.TxManager
}

func NewStatusHandlerFactory(
	orders order.Repository,
	offers order.OfferRepository,
	dispatcher order.DispatchService,
	txManager order.TxManager,
) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orders:     orders,
		offers:     offers,
		dispatcher: dispatcher,
		txManager:  txManager,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderPending:
		return f.pendingHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderPickedUp:
		return f.pickedUpHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) pendingHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatcher.Dispatch(ctx, orderID)
	if err != nil {
		return fmt.Errorf("dispatch pending order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		if err := f.orders.Cancel(ctx, orderID); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		if _, err := f.offers.SupersedeByOrder(ctx, orderID); err != nil {
			return fmt.Errorf("supersede offers: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) pickedUpHandler(ctx context.Context, orderID string) error {
	err := f.orders.UpdateStatus(ctx, orderID, entities.OrderAssigned, entities.OrderPickedUp)
	if err != nil {
		return fmt.Errorf("mark order %s picked up: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID string) error {
	err := f.orders.UpdateStatus(ctx, orderID, entities.OrderPickedUp, entities.OrderDelivered)
	if err != nil {
		return fmt.Errorf("mark order %s delivered: %w", orderID, err)
	}
	return nil
}
