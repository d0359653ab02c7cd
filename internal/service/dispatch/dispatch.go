package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
	"dispatch/pkg/logger"
)

const (
	DefaultRadiusKm    = 10.0
	DefaultOfferTTL    = 30 * time.Second
	DefaultMaxAttempts = 3
)

type Config struct {
	RadiusKm    float64
	OfferTTL    time.Duration
	MaxAttempts int
}

func DefaultConfig() Config {
	return Config{
		RadiusKm:    DefaultRadiusKm,
		OfferTTL:    DefaultOfferTTL,
		MaxAttempts: DefaultMaxAttempts,
	}
}

type OutcomeType string

const (
	OutcomeOffered         OutcomeType = "offered"
	OutcomeAlreadyAssigned OutcomeType = "already_assigned"
	OutcomeOfferPending    OutcomeType = "offer_pending"
	OutcomeNoCandidates    OutcomeType = "no_candidates"
	OutcomeExhausted       OutcomeType = "exhausted"
)

func (o OutcomeType) String() string {
	return string(o)
}

// Result — итог одной попытки диспетчеризации. Отсутствие кандидатов
// и исчерпание попыток не ошибки: заказ остаётся pending.
type Result struct {
	Outcome OutcomeType
	Offer   *entities.Offer
}

type RedispatchReport struct {
	ExpiredOffers int64
	OrdersChecked int
	Offered       int
}

type Dispatch struct {
	orders        OrderRepository
	offers        OfferRepository
	driverService DriverService
	locations     LocationStore
	scoreFactory  ScoreFactory
	pusher        OfferPusher
	txManager     TxManager
	log           serviceLogger
	config        Config
}

func New(
	orders OrderRepository,
	offers OfferRepository,
	driverService DriverService,
	locations LocationStore,
	scoreFactory ScoreFactory,
	pusher OfferPusher,
	txManager TxManager,
	log serviceLogger,
	config Config,
) *Dispatch {
	if config.RadiusKm <= 0 {
		config.RadiusKm = DefaultRadiusKm
	}
	if config.OfferTTL <= 0 {
		config.OfferTTL = DefaultOfferTTL
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}

	return &Dispatch{
		orders:        orders,
		offers:        offers,
		driverService: driverService,
		locations:     locations,
		scoreFactory:  scoreFactory,
		pusher:        pusher,
		txManager:     txManager,
		log:           log,
		config:        config,
	}
}

// Dispatch подбирает кандидата для заказа и создаёт ему оффер.
// Повторный вызов для уже назначенного заказа или при живом оффере -
// no-op с соответствующим исходом.
func (d *Dispatch) Dispatch(ctx context.Context, orderID string) (*Result, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order for dispatch: %w", err)
	}

	if order.Status != entities.OrderPending {
		return &Result{Outcome: OutcomeAlreadyAssigned}, nil
	}

	openOffer, err := d.offers.GetOpenByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, ErrOfferNotFound) {
		return nil, fmt.Errorf("check open offer: %w", err)
	}
	if openOffer != nil {
		return &Result{Outcome: OutcomeOfferPending, Offer: openOffer}, nil
	}

	candidates, err := d.rankCandidates(ctx, order)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &Result{Outcome: OutcomeNoCandidates}, nil
	}

	offeredIDs, err := d.offers.GetOfferedDriverIDs(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get offered drivers: %w", err)
	}
	offered := make(map[string]struct{}, len(offeredIDs))
	for _, id := range offeredIDs {
		offered[id] = struct{}{}
	}

	var next *entities.Candidate
	for i := range candidates {
		if _, ok := offered[candidates[i].Driver.ID]; ok {
			continue
		}
		next = &candidates[i]
		break
	}
	if next == nil {
		return &Result{Outcome: OutcomeExhausted}, nil
	}

	expiresAt := time.Now().UTC().Add(d.config.OfferTTL)
	offer, err := d.offers.Create(ctx, orderID, next.Driver.ID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	// доставка уведомления не откатывает уже созданный оффер
	if err := d.pusher.PushOffer(ctx, *offer, *order); err != nil {
		d.log.Warn("offer push failed",
			logger.NewField("order", orderID),
			logger.NewField("driver", next.Driver.ID),
			logger.NewField("error", err),
		)
	}

	return &Result{Outcome: OutcomeOffered, Offer: offer}, nil
}

// AcceptOffer выполняет условную запись: заказ достаётся ровно одному
// водителю, проигравший получает ErrOrderNoLongerAvailable.
func (d *Dispatch) AcceptOffer(ctx context.Context, orderID, driverID string) (*entities.Offer, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var accepted *entities.Offer
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := d.offers.MarkAccepted(ctx, orderID, driverID)
		if err != nil {
			return fmt.Errorf("mark offer accepted: %w", err)
		}

		if err := d.orders.Claim(ctx, orderID, driverID); err != nil {
			return fmt.Errorf("claim order: %w", err)
		}

		if _, err := d.offers.SupersedeOthers(ctx, orderID, driverID); err != nil {
			return fmt.Errorf("supersede other offers: %w", err)
		}

		acceptingOrders := false
		driverModify := entities.DriverModify{
			ID:              &driverID,
			AcceptingOrders: &acceptingOrders,
		}
		if _, err := d.driverService.UpdateDriver(ctx, driverModify); err != nil {
			return fmt.Errorf("update driver availability: %w", err)
		}

		accepted = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accepted, nil
}

// DeclineOffer закрывает оффер и сразу пробует следующего кандидата.
func (d *Dispatch) DeclineOffer(ctx context.Context, orderID, driverID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidDriverID(driverID) {
		return ErrInvalidDriverID
	}

	if _, err := d.offers.MarkDeclined(ctx, orderID, driverID); err != nil {
		return fmt.Errorf("mark offer declined: %w", err)
	}

	if _, err := d.Dispatch(ctx, orderID); err != nil {
		d.log.Warn("redispatch after decline failed",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
	}

	return nil
}

// RedispatchStalled гасит просроченные офферы и перезапускает
// диспетчеризацию для всех подвисших pending-заказов.
func (d *Dispatch) RedispatchStalled(ctx context.Context) (*RedispatchReport, error) {
	report := &RedispatchReport{}

	expired, err := d.offers.ExpireOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire overdue offers: %w", err)
	}
	report.ExpiredOffers = expired

	orderIDs, err := d.orders.ListPendingIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	for _, orderID := range orderIDs {
		report.OrdersChecked++

		result, err := d.Dispatch(ctx, orderID)
		if err != nil {
			d.log.Error("redispatch failed",
				logger.NewField("order", orderID),
				logger.NewField("error", err),
			)
			continue
		}
		if result.Outcome == OutcomeOffered {
			report.Offered++
		}
	}

	return report, nil
}

func (d *Dispatch) rankCandidates(ctx context.Context, order *entities.Order) ([]entities.Candidate, error) {
	drivers, err := d.driverService.GetAvailableDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available drivers: %w", err)
	}

	candidates := make([]entities.Candidate, 0, len(drivers))
	for _, drv := range drivers {
		location, err := d.locations.GetLocation(ctx, drv.ID)
		if err != nil {
			// водитель без координат недостижим, но это не причина
			// ронять весь диспатч
			if !errors.Is(err, ErrLocationUnknown) {
				d.log.Warn("location lookup failed",
					logger.NewField("driver", drv.ID),
					logger.NewField("error", err),
				)
			}
			continue
		}

		distanceKm := geo.DistanceKm(order.Pickup, entities.Coord{Lat: location.Lat, Lng: location.Lng})
		if distanceKm > d.config.RadiusKm {
			continue
		}

		candidates = append(candidates, entities.Candidate{
			Driver:     drv,
			DistanceKm: distanceKm,
			Score:      d.scoreFactory.CalculateScore(drv, distanceKm),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Driver.ID < candidates[j].Driver.ID
	})

	if len(candidates) > d.config.MaxAttempts {
		candidates = candidates[:d.config.MaxAttempts]
	}

	return candidates, nil
}
