package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrLimiterUnavailable возвращается, если хранилище состояния недоступно
var ErrLimiterUnavailable = errors.New("ratelimit: limiter unavailable")

// Decision результат проверки лимита
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter token bucket по произвольному ключу (IP клиента)
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Settings параметры корзины: емкость и скорость пополнения
type Settings struct {
	Capacity        int
	RefillPerMinute float64
}

// refillInterval время пополнения одного токена
func (s Settings) refillInterval() time.Duration {
	if s.RefillPerMinute <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Minute) / s.RefillPerMinute)
}
