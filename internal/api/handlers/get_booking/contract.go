package get_booking

import (
	"context"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, caller *domain.Identity, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
