package list_locations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil))

	var resp []LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, LocationResponse{Key: "classic", Name: "經典山道", Description: "大帽山 / 飛鵝山 / 汀九"}, resp[0])
}
