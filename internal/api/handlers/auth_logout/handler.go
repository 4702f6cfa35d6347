package auth_logout

import (
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/logout
// Cookie удаляется всегда, даже если сессии не было
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if identity := middleware.GetIdentity(r.Context()); identity != nil {
		h.logger.Info("POST /auth/logout - user_id=%d logged out", identity.ID)
	}

	h.sessions.ClearCookie(w)
	handlers.RespondSuccess(w)
}
