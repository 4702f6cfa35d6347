package list_locations

import (
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/domain"
)

// LocationResponse место съемки в форме бронирования
type LocationResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	resp := make([]LocationResponse, 0, len(domain.Locations))
	for _, l := range domain.Locations {
		resp = append(resp, LocationResponse{Key: l.Key, Name: l.Name, Description: l.Description})
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
