package submit_booking

import (
	"errors"
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	submitBooking "github.com/most-gh/mddroner-booking/internal/usecase/submit_booking"
)

const (
	msgValidation   = "請填寫所有必填欄位。"
	msgSubmitFailed = "預約提交失敗，請稍後再試。"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - request_id=%s invalid request body: %v", requestID, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	if _, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest()); err != nil {
		var vErr *submitBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - request_id=%s validation failed: fields=%v", requestID, vErr.Fields)
			handlers.RespondValidationError(w, msgValidation, vErr.Fields)

		default:
			h.logger.Error("POST /bookings - request_id=%s failed to submit booking: %v", requestID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSubmitFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - request_id=%s booking submitted", requestID)
	handlers.RespondSuccess(w)
}
