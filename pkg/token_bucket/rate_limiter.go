package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket — классический token bucket: Allow списывает токен либо
// отклоняет запрос, пополнение идёт лениво при каждом вызове.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens == 0 {
		return false
	}
	t.tokens--
	return true
}

// lastRefill двигается только когда начислен хотя бы один целый токен,
// иначе частые вызовы с малым elapsed никогда не пополнят ведро.
func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd == 0 {
		return
	}

	t.tokens += tokensToAdd
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
