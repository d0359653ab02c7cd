package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает балансировщику: 204 пока сервис жив, 503 когда
// начался graceful shutdown и новые запросы принимать нельзя.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{isShuttingDown: isShuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
