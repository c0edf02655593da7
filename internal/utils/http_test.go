package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/habit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "token",
			data:     models.NewAccessTokenResponse(models.Token{SignedString: "abc"}),
			status:   http.StatusOK,
			wantBody: `{"access_token":"abc","token_type":"bearer"}`,
		},
		{
			name:     "error detail",
			data:     models.ErrorResponse{Detail: "Email already registered"},
			status:   http.StatusConflict,
			wantBody: `{"detail":"Email already registered"}`,
		},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "slice", data: []string{"a", "b"}, status: http.StatusOK, wantBody: `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			n, err := WriteJSON(rr, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, rr.Body.Len(), n)
		})
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]any{"bad": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEqual(t, "application/json", rr.Header().Get("Content-Type"))
}
