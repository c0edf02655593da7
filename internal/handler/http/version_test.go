package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/mock"
	"github.com/MKhiriev/habit-tracker/internal/service"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerWithAppInfo(t *testing.T, version string) *Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
}

func decodeVersion(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.VersionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Version
}

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "release", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "pre-release with build metadata", version: "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAppInfo(t, tt.version)

			req := httptest.NewRequest(http.MethodGet, "/version", nil)
			rec := httptest.NewRecorder()

			h.getServerVersion(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, decodeVersion(t, rec))
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newHandlerWithAppInfo(t, "3.0.0")
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", decodeVersion(t, rec))
}
