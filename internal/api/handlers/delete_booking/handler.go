package delete_booking

import (
	"errors"
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	"github.com/most-gh/mddroner-booking/internal/service/authz"
	"github.com/most-gh/mddroner-booking/internal/service/bookings"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Права проверяются до разбора запроса
	caller := middleware.GetIdentity(r.Context())
	if err := authz.RequireAdmin(caller); err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Access denied: request_id=%s", middleware.GetRequestID(r.Context()))
		handlers.RespondForbidden(w, handlers.MsgForbidden)
		return
	}

	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), caller, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d", bookingID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondSuccess(w)
}
