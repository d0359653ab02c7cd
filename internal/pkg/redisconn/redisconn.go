package redisconn

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 5 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	err := pingRedis(ctx, redisLog, client)
	if err != nil {
		closeErr := client.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}

func pingRedis(ctx context.Context, log logger.Logger, client *redis.Client) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Redis connection")

		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Redis connection established")
	return nil
}
