package pricing_estimate

import (
	"net/http"
	"strconv"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
	"github.com/most-gh/mddroner-booking/internal/service/pricing"
)

// Response оценка стоимости с разбивкой и действующим прайсом
type Response struct {
	pricing.Quote
	Prices pricing.Prices `json:"prices"`
}

type Handler struct {
	prices pricing.Prices
}

func NewHandler(prices pricing.Prices) *Handler {
	return &Handler{prices: prices}
}

// Handle GET /api/v1/pricing/estimate?multipleVehicles=true&extraVehicles=2&videoUpgrade=true&videoLocations=3
// Нечисловые счетчики считаются не указанными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	selection := pricing.Selection{
		MultipleVehicles: parseBool(query.Get("multipleVehicles")),
		ExtraVehicles:    pricing.ParseCount(query.Get("extraVehicles")),
		VideoUpgrade:     parseBool(query.Get("videoUpgrade")),
		VideoLocations:   pricing.ParseCount(query.Get("videoLocations")),
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Quote:  pricing.Breakdown(h.prices, selection),
		Prices: h.prices,
	})
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
