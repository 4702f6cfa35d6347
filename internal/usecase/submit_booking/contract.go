package submit_booking

import (
	"context"
	"time"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Notifier канал уведомлений владельца
type Notifier interface {
	Name() string
	NotifyOwner(ctx context.Context, title, content string) error
}

// Metrics бизнес-метрики отправки заявок
type Metrics interface {
	IncBookingsSubmitted()
	IncNotificationFailed(channel string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) IncBookingsSubmitted()         {}
func (nopMetrics) IncNotificationFailed(string) {}
