package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/most-gh/mddroner-booking/internal/service/pricing"
	"github.com/most-gh/mddroner-booking/internal/wizard"
)

const (
	bookingsPath = "/api/v1/bookings"
	estimatePath = "/api/v1/pricing/estimate"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP клиент публичного API бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Submit отправляет заявку POST /api/v1/bookings
func (c *Client) Submit(ctx context.Context, s wizard.Submission) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal submission: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookingsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.log.Info("Booking submitted, route=%q", s.Route)
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return rejected(resp, ErrValidation)
	case resp.StatusCode == http.StatusTooManyRequests:
		return rejected(resp, ErrRateLimited)
	default:
		return rejected(resp, ErrInvalidResponse)
	}
}

// Prices получает действующий прайс сервиса
func (c *Client) Prices(ctx context.Context) (pricing.Prices, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+estimatePath, nil)
	if err != nil {
		return pricing.Prices{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pricing.Prices{}, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pricing.Prices{}, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	var estimate estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		return pricing.Prices{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return estimate.Prices, nil
}

func rejected(resp *http.Response, kind error) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body apiError
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		body.Message = strings.TrimSpace(string(raw))
	}

	return &RejectedError{
		Status:  resp.StatusCode,
		Message: body.Message,
		Fields:  body.Fields,
		kind:    kind,
	}
}
