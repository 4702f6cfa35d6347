package admin_export

import (
	"errors"
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	"github.com/most-gh/mddroner-booking/internal/service/dashboard"
)

const msgInvalidFilter = "月份、狀態或匯出格式無效。"

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

// Handle GET /api/v1/admin/export?month=YYYY-MM&status=...&format=csv|xlsx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := dashboard.Filter{
		Month:  query.Get("month"),
		Status: query.Get("status"),
	}

	export, err := h.service.Export(r.Context(), middleware.GetIdentity(r.Context()), filter, query.Get("format"))
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrAccessDenied):
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, dashboard.ErrInvalidFilter):
			h.logger.Warn("GET /admin/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondAttachment(w, export.Filename, export.ContentType, export.Body)
}
