//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) error
	Cancel(ctx context.Context, orderID string) error
}

type OfferRepository interface {
	SupersedeByOrder(ctx context.Context, orderID string) (int64, error)
}

type DispatchService interface {
	Dispatch(ctx context.Context, orderID string) (*dispatch.Result, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
