package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// Check проверка зависимости (PostgreSQL, Redis)
type Check func(ctx context.Context) error

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Response состояние сервиса и его зависимостей
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	checks  map[string]Check
	timeout time.Duration
	logger  Logger
}

func NewHandler(checks map[string]Check, timeout time.Duration, logger Logger) *Handler {
	return &Handler{checks: checks, timeout: timeout, logger: logger}
}

// Handle GET /health
// 503, если хотя бы одна зависимость недоступна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := Response{Status: statusOK, Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Error("GET /health - %s check failed: %v", name, err)
			resp.Status = statusDegraded
			resp.Checks[name] = "error"
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if resp.Status != statusOK {
		code = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, code, resp)
}
