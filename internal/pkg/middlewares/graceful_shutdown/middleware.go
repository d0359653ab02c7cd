package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы после начала остановки сервиса,
// давая уже начатым запросам дорабатывать в ongoingCtx.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
