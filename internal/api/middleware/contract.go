package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/infra/ratelimit"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route, status string, duration time.Duration)
}

// RateLimitMetrics счетчик отклоненных запросов
type RateLimitMetrics interface {
	IncRateLimited()
}

// SessionResolver извлекает identity из сессии запроса
type SessionResolver interface {
	FromRequest(r *http.Request) (*domain.Identity, error)
}

// Limiter token bucket по ключу
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}
