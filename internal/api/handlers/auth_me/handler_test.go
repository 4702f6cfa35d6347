package auth_me

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	"github.com/most-gh/mddroner-booking/internal/domain"
)

func TestHandle_Anonymous(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, rec.Body.String())
}

func TestHandle_Identity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), &domain.Identity{
		ID: 1, OpenID: "open-1", Name: "Owner", Email: "owner@mddroner.hk", Role: domain.RoleAdmin,
	}))

	rec := httptest.NewRecorder()
	NewHandler().Handle(rec, req)

	assert.JSONEq(t, `{"id":1,"openId":"open-1","name":"Owner","email":"owner@mddroner.hk","role":"admin"}`, rec.Body.String())
}
