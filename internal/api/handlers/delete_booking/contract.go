package delete_booking

import (
	"context"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, caller *domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
