package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const channelPrefix = "driver:notify:"

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const defaultAvgSpeedKmh = 30.0

// OfferPayload — то, что видит клиент водителя при новом оффере.
type OfferPayload struct {
	Type             string    `json:"type"`
	OrderID          string    `json:"order_id"`
	RestaurantName   string    `json:"restaurant_name"`
	PickupAddress    string    `json:"pickup_address"`
	DropoffAddress   string    `json:"dropoff_address"`
	PayoutCents      int64     `json:"payout_cents"`
	DistanceKm       float64   `json:"distance_km"`
	EstimatedMinutes int       `json:"estimated_time"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// PromotionPayload уведомляет водителя о продвижении в очереди.
type PromotionPayload struct {
	Type          string `json:"type"`
	MessageType   string `json:"message_type"`
	RegionName    string `json:"region_name,omitempty"`
	PriorityScore int    `json:"priority_score,omitempty"`
}

// Gateway публикует realtime-события в канал водителя через Redis
// pub/sub. Подписчиков может не быть, publish при этом не ошибка.
type Gateway struct {
	client      client
	retrier     retrier
	avgSpeedKmh float64
}

func New(client client, avgSpeedKmh float64) *Gateway {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = defaultAvgSpeedKmh
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	return &Gateway{
		client:      client,
		retrier:     backoff_adapter.New(retryConfig),
		avgSpeedKmh: avgSpeedKmh,
	}
}

func (g *Gateway) PushOffer(ctx context.Context, offer entities.Offer, order entities.Order) error {
	payload := OfferPayload{
		Type:             "offer",
		OrderID:          order.ID,
		RestaurantName:   order.RestaurantName,
		PickupAddress:    order.PickupAddress,
		DropoffAddress:   order.DropoffAddress,
		PayoutCents:      order.PayoutCents,
		DistanceKm:       order.DistanceKm,
		EstimatedMinutes: geo.ETAMinutes(order.DistanceKm, g.avgSpeedKmh),
		ExpiresAt:        offer.ExpiresAt,
	}

	if err := g.publish(ctx, "PushOffer", offer.DriverID, payload); err != nil {
		return fmt.Errorf("gateway push, offer for order %s: %w", order.ID, err)
	}
	return nil
}

func (g *Gateway) PushPromotion(ctx context.Context, driverID, messageType, regionName string, priorityScore int) error {
	payload := PromotionPayload{
		Type:          "queue",
		MessageType:   messageType,
		RegionName:    regionName,
		PriorityScore: priorityScore,
	}

	if err := g.publish(ctx, "PushPromotion", driverID, payload); err != nil {
		return fmt.Errorf("gateway push, promotion for driver %s: %w", driverID, err)
	}
	return nil
}

func (g *Gateway) publish(ctx context.Context, method, driverID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	channel := channelPrefix + driverID

	var attempt uint64
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.client.Publish(ctx, channel, body).Err()
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	PushRequestDuration.WithLabelValues(method, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		PushRetriesTotal.WithLabelValues(method, result).Inc()
	}

	return err
}
