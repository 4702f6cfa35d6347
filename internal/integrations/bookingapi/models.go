package bookingapi

import (
	"fmt"
	"strings"

	"github.com/most-gh/mddroner-booking/internal/service/pricing"
)

// apiError тело ответа сервиса с ошибкой
type apiError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// estimateResponse ответ GET /api/v1/pricing/estimate, нужен только прайс
type estimateResponse struct {
	Prices pricing.Prices `json:"prices"`
}

// RejectedError заявка отклонена сервером
type RejectedError struct {
	Status  int
	Message string
	Fields  []string
	kind    error
}

func (e *RejectedError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.kind, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return e.kind
}
