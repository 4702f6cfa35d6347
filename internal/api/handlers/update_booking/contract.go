package update_booking

import (
	"context"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
)

type BookingService interface {
	Update(ctx context.Context, caller *domain.Identity, id int64, req *models.UpdateBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
