package offer_sweep

import (
	"context"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type Service interface {
	RedispatchStalled(ctx context.Context) (*dispatch.RedispatchReport, error)
}

type OfferSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferSweep(log logger.Logger, service Service, interval time.Duration) *OfferSweep {
	return &OfferSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferSweep) TTL() time.Duration {
	return o.interval
}

func (o *OfferSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	report, err := o.service.RedispatchStalled(ctxWithTimeout)
	if err != nil {
		return err
	}

	if report.ExpiredOffers > 0 || report.Offered > 0 {
		o.log.With(
			logger.NewField("expired_offers", report.ExpiredOffers),
			logger.NewField("orders_checked", report.OrdersChecked),
			logger.NewField("offered", report.Offered),
		).Info("offer sweep")
	}

	return nil
}

func (o *OfferSweep) Info() string {
	return "offer sweep"
}
