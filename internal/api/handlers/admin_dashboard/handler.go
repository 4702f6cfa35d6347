package admin_dashboard

import (
	"errors"
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	"github.com/most-gh/mddroner-booking/internal/service/dashboard"
)

const msgInvalidFilter = "月份或狀態篩選無效。"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard?month=YYYY-MM&status=all|pending|...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := dashboard.Filter{
		Month:  r.URL.Query().Get("month"),
		Status: r.URL.Query().Get("status"),
	}

	resp, err := h.service.View(r.Context(), middleware.GetIdentity(r.Context()), filter)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrAccessDenied):
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, dashboard.ErrInvalidFilter):
			h.logger.Warn("GET /admin/dashboard - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
