// Package transport issues single bounded HTTP requests against the
// inference service and classifies every failure into a typed error kind.
// It never touches shared health state; that is the caller's job.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pulseai/gateway/internal/core/domain"
)

// DefaultTimeout bounds a single request when the config does not say
// otherwise.
const DefaultTimeout = 10 * time.Second

// Client talks JSON over plain HTTP to the inference service.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a transport client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Post sends payload as JSON to path and returns the raw success body.
func (c *Client) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewUnknownError("marshal request", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body))
}

// Get issues a GET request to path and returns the raw success body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, domain.NewUnknownError("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// CheckHealth probes GET /health and reports whether the service considers
// itself reachable. Both "healthy" and "degraded" count: a degraded service
// still answers predictions.
func (c *Client) CheckHealth(ctx context.Context) bool {
	body, err := c.Get(ctx, "/health")
	if err != nil {
		return false
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return false
	}

	return status.Status == "healthy" || status.Status == "degraded"
}

// classifyTransportError separates an elapsed deadline from a connectivity
// failure seen before any response.
func classifyTransportError(err error) *domain.PredictionError {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewTimeoutError(err)
	}
	return domain.NewNetworkError(err)
}

// classifyStatus maps a non-success status to an error kind, pulling a
// message out of the body when the service sent one.
func classifyStatus(status int, body []byte) *domain.PredictionError {
	message := errorMessage(status, body)

	if status == http.StatusUnprocessableEntity {
		return domain.NewValidationError(status, message)
	}
	return domain.NewServerError(status, message)
}

func errorMessage(status int, body []byte) string {
	var werr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &werr); err == nil && werr.Message != "" {
		return werr.Message
	}
	if len(body) > 0 {
		return string(body)
	}
	return fmt.Sprintf("http %d", status)
}
