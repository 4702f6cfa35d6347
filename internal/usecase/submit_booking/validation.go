package submit_booking

import (
	"strings"

	"github.com/most-gh/mddroner-booking/pkg/ptr"
)

// normalizeRequest обрезает пробелы и превращает пустые необязательные поля в nil
func normalizeRequest(req *Request) *Request {
	normalized := &Request{
		Route:            strings.TrimSpace(req.Route),
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		CarModel:         strings.TrimSpace(req.CarModel),
		BookingDate:      strings.TrimSpace(req.BookingDate),
		MultipleVehicles: req.MultipleVehicles,
		VideoUpgrade:     req.VideoUpgrade,
	}

	if req.CarPlate != nil {
		normalized.CarPlate = ptr.NonEmpty(strings.TrimSpace(*req.CarPlate))
	}
	if req.SpecialRequests != nil {
		normalized.SpecialRequests = ptr.NonEmpty(strings.TrimSpace(*req.SpecialRequests))
	}

	return normalized
}

// validateRequest проверяет обязательные поля уже нормализованного запроса
// Возвращает *ValidationError со всеми незаполненными полями сразу
func validateRequest(req *Request) error {
	var missing []string

	required := []struct {
		field string
		value string
	}{
		{"route", req.Route},
		{"name", req.Name},
		{"phone", req.Phone},
		{"carModel", req.CarModel},
		{"bookingDate", req.BookingDate},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return nil
}
