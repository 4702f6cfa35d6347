package auth_me

import (
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/auth/me
// Аноним получает 200 с null
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainIdentity(middleware.GetIdentity(r.Context())))
}
