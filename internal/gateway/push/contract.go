//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=push_test
package push

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type client interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
