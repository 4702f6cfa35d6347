package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL после какого простоя корзина клиента удаляется
const idleTTL = time.Hour

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter лимит в памяти процесса, используется без Redis
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	settings Settings
	now      func() time.Time
}

// NewMemoryLimiter создает лимитер на golang.org/x/time/rate
func NewMemoryLimiter(settings Settings) *MemoryLimiter {
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		settings: settings,
		now:      time.Now,
	}
}

// Allow списывает токен для ключа
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(l.settings.refillInterval()), l.settings.Capacity),
		}
		l.visitors[key] = v
	}
	v.lastSeen = now

	r := v.limiter.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false, RetryAfter: l.settings.refillInterval()}, nil
	}

	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}

	return Decision{Allowed: true, Remaining: int(v.limiter.TokensAt(now))}, nil
}

// Cleanup удаляет корзины клиентов, которые давно не появлялись
func (l *MemoryLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.visitors, key)
		}
	}
}

// RunCleanup периодически вызывает Cleanup до закрытия stopCh
func (l *MemoryLimiter) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Cleanup()
		case <-stopCh:
			return
		}
	}
}

// String описание для логов
func (l *MemoryLimiter) String() string {
	return "memory(capacity=" + strconv.Itoa(l.settings.Capacity) + ")"
}
