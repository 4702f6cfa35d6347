package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/most-gh/mddroner-booking/pkg/logger"
)

func ok(context.Context) error   { return nil }
func fail(context.Context) error { return errors.New("dial tcp: connection refused") }

func TestHandle(t *testing.T) {
	h := NewHandler(map[string]Check{"postgres": ok, "redis": ok}, time.Second, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rec.Body.String())
}

func TestHandle_Degraded(t *testing.T) {
	h := NewHandler(map[string]Check{"postgres": ok, "redis": fail}, time.Second, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":{"postgres":"ok","redis":"error"}}`, rec.Body.String())
}
