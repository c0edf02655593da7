package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	require.NotNil(t, client.Client)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestNewHTTPClient_Independent(t *testing.T) {
	assert.NotSame(t, NewHTTPClient("http://a", 0).Client, NewHTTPClient("http://a", 0).Client)
}

func TestNewHTTPClient_RetriesOnlySafeRequests(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		wantCalls int32
	}{
		{name: "get is retried", method: http.MethodGet, wantCalls: retryCount + 1},
		{name: "post is not replayed", method: http.MethodPost, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			resp, err := NewHTTPClient(srv.URL, time.Second).R().Execute(tt.method, "/auth/login")
			require.NoError(t, err)
			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
