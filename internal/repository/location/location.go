package location

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

const (
	geoKey        = "drivers:geo"
	metaKeyPrefix = "driver:loc:"

	// позиции старше этого возраста считаются потерянными
	DefaultStaleAfter = 15 * time.Minute
)

// Store держит последнюю известную позицию каждого водителя в Redis:
// GEO-индекс для выборок по расстоянию и hash с координатами и
// временем фиксации. История не хранится, каждый пинг перезаписывает
// предыдущий.
type Store struct {
	client     *redis.Client
	staleAfter time.Duration
}

func New(client *redis.Client, staleAfter time.Duration) *Store {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}

	return &Store{
		client:     client,
		staleAfter: staleAfter,
	}
}

func (s *Store) SetLocation(ctx context.Context, location entities.DriverLocation) error {
	pipe := s.client.TxPipeline()

	pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      location.DriverID,
		Longitude: location.Lng,
		Latitude:  location.Lat,
	})
	pipe.HSet(ctx, metaKeyPrefix+location.DriverID, map[string]interface{}{
		"lat": location.Lat,
		"lng": location.Lng,
		"ts":  location.RecordedAt.UTC().Format(time.RFC3339),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("unexpected location store set error: %w", err)
	}

	return nil
}

func (s *Store) GetLocation(ctx context.Context, driverID string) (*entities.DriverLocation, error) {
	values, err := s.client.HGetAll(ctx, metaKeyPrefix+driverID).Result()
	if err != nil {
		return nil, fmt.Errorf("unexpected location store get error: %w", err)
	}
	if len(values) == 0 {
		return nil, dispatch.ErrLocationUnknown
	}

	lat, err := strconv.ParseFloat(values["lat"], 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected location store parse error: %w", err)
	}
	lng, err := strconv.ParseFloat(values["lng"], 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected location store parse error: %w", err)
	}
	recordedAt, err := time.Parse(time.RFC3339, values["ts"])
	if err != nil {
		return nil, fmt.Errorf("unexpected location store parse error: %w", err)
	}

	if time.Since(recordedAt) > s.staleAfter {
		return nil, dispatch.ErrLocationUnknown
	}

	return &entities.DriverLocation{
		DriverID:   driverID,
		Lat:        lat,
		Lng:        lng,
		RecordedAt: recordedAt,
	}, nil
}
