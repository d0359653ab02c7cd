//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	Claim(ctx context.Context, orderID, driverID string) error
	ListPendingIDs(ctx context.Context) ([]string, error)
}

type OfferRepository interface {
	Create(ctx context.Context, orderID, driverID string, expiresAt time.Time) (*entities.Offer, error)
	GetOpenByOrderID(ctx context.Context, orderID string) (*entities.Offer, error)
	GetOfferedDriverIDs(ctx context.Context, orderID string) ([]string, error)
	MarkAccepted(ctx context.Context, orderID, driverID string) (*entities.Offer, error)
	MarkDeclined(ctx context.Context, orderID, driverID string) (*entities.Offer, error)
	SupersedeOthers(ctx context.Context, orderID, winnerDriverID string) (int64, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type DriverService interface {
	GetAvailableDrivers(ctx context.Context) ([]entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type LocationStore interface {
	GetLocation(ctx context.Context, driverID string) (*entities.DriverLocation, error)
}

type ScoreFactory interface {
	CalculateScore(driver entities.Driver, distanceKm float64) float64
}

type OfferPusher interface {
	PushOffer(ctx context.Context, offer entities.Offer, order entities.Order) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
