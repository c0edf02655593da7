package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent = "habit-tracker-client"

	// safe requests answered with 503 are retried this many times.
	retryCount   = 2
	retryWait    = 200 * time.Millisecond
	retryMaxWait = time.Second
)

// HTTPClient is the resty client used by the API adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for baseURL. A zero timeout leaves
// requests unbounded. GET requests that hit a 503 are retried; token
// requests are never replayed.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(retryUnavailable)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func retryUnavailable(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	return resp.Request.Method == http.MethodGet && resp.StatusCode() == http.StatusServiceUnavailable
}
