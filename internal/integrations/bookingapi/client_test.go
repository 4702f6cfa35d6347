package bookingapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/most-gh/mddroner-booking/internal/wizard"
	"github.com/most-gh/mddroner-booking/pkg/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", time.Second, logger.Nop())
}

func TestClient_Submit(t *testing.T) {
	var got wizard.Submission
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	err := client.Submit(context.Background(), wizard.Submission{
		Route:       "經典山道",
		Name:        "李明",
		Phone:       "+852 9876 5432",
		CarModel:    "Porsche 911",
		BookingDate: "2025-02-20",
	})

	require.NoError(t, err)
	assert.Equal(t, "經典山道", got.Route)
	assert.Nil(t, got.CarPlate)
}

func TestClient_Submit_Validation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":400,"message":"請填寫所有必填欄位。","fields":["phone"]}`))
	})

	err := client.Submit(context.Background(), wizard.Submission{})

	require.ErrorIs(t, err, ErrValidation)
	var rejectedErr *RejectedError
	require.True(t, errors.As(err, &rejectedErr))
	assert.Equal(t, http.StatusBadRequest, rejectedErr.Status)
	assert.Equal(t, []string{"phone"}, rejectedErr.Fields)
}

func TestClient_Submit_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("plain text"))
			})

			err := client.Submit(context.Background(), wizard.Submission{})
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "plain text")
		})
	}
}

func TestClient_Submit_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.Nop())

	err := client.Submit(context.Background(), wizard.Submission{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_Prices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pricing/estimate", r.URL.Path)
		_, _ = w.Write([]byte(`{"base":3000,"vehicles":0,"video":0,"total":3000,"prices":{"basePrice":3000,"perVehiclePrice":900,"perVideoPrice":600}}`))
	})

	prices, err := client.Prices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3000, prices.Base)
	assert.Equal(t, 900, prices.PerVehicle)
	assert.Equal(t, 600, prices.PerVideo)
}
