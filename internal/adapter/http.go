package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/utils"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying client with it and the request timeout.
//
// Returns [ErrInvalidAddress] if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs credentials to /auth/register and stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error) {
	return h.requestToken(ctx, "/auth/register", credentials)
}

// Login POSTs credentials to /auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error) {
	return h.requestToken(ctx, "/auth/login", models.Credentials{
		Email:    credentials.Email,
		Password: credentials.Password,
	})
}

func (h *httpServerAdapter) requestToken(ctx context.Context, path string, credentials models.Credentials) (models.AccessTokenResponse, error) {
	var token models.AccessTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("path", path).Msg("token request rejected")
		return models.AccessTokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.AccessTokenResponse{}, ErrEmptyToken
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// CurrentUser GETs /auth/me with the stored token.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserOut, error) {
	var user models.UserOut

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/auth/me")
	if err != nil {
		return models.UserOut{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserOut{}, err
	}

	return user, nil
}

// Health GETs /health. An unhealthy server yields the decoded status and
// [ErrServiceUnavailable].
func (h *httpServerAdapter) Health(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&status).
		Get("/health")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("health request: %w", err)
	}

	return status, mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
