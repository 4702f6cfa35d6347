package admin_dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
	"github.com/most-gh/mddroner-booking/internal/service/dashboard"
	"github.com/most-gh/mddroner-booking/pkg/logger"
)

type fakeService struct {
	got dashboard.Filter
	err error
}

func (f *fakeService) View(_ context.Context, caller *domain.Identity, filter dashboard.Filter) (*dashboard.Response, error) {
	f.got = filter
	if f.err != nil {
		return nil, f.err
	}
	if !caller.IsAdmin() {
		return nil, dashboard.ErrAccessDenied
	}
	return &dashboard.Response{
		Month:    filter.Month,
		Status:   filter.Status,
		Stats:    dashboard.Stats{Total: 3, Confirmed: 1},
		Bookings: []*models.BookingResponse{{ID: 1, Status: "confirmed"}},
	}, nil
}

func get(svc *fakeService, identity *domain.Identity, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identity))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

var admin = &domain.Identity{ID: 1, Role: domain.RoleAdmin}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := get(svc, admin, "/api/v1/admin/dashboard?month=2025-02&status=confirmed")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dashboard.Filter{Month: "2025-02", Status: "confirmed"}, svc.got)
	assert.Contains(t, rec.Body.String(), `"stats":{"total":3,"pending":0,"confirmed":1,"completed":0,"cancelled":0}`)
}

func TestHandle_Forbidden(t *testing.T) {
	rec := get(&fakeService{}, nil, "/api/v1/admin/dashboard")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_InvalidFilter(t *testing.T) {
	rec := get(&fakeService{err: dashboard.ErrInvalidFilter}, admin, "/api/v1/admin/dashboard?month=2025-13")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
