// Package api is the HTTP client for the trámites backend. All chat traffic,
// feedback submission, and the auth hand-off flow go through it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/jvalva/consulta/internal/errors"
	"github.com/jvalva/consulta/internal/logger"
)

// DefaultBaseURL is the local development address of the Flask backend.
const DefaultBaseURL = "http://localhost:5000"

// MaxMessageLength mirrors the backend's per-message character limit. The
// client refuses longer messages without issuing a request.
const MaxMessageLength = 2000

const probeTimeout = 10 * time.Second

// Client talks to the backend. Probe-style endpoints (health, auth status)
// use a bounded timeout; chat requests run without one since generation time
// is unbounded and cancellation is cooperative via context.
type Client struct {
	baseURL string
	http    *http.Client
	chat    *http.Client
	log     *slog.Logger
}

// New returns a client for the given base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: probeTimeout},
		chat:    &http.Client{},
		log:     logger.WithComponent("api"),
	}
}

// WithSession attaches the install's client ID to the request log lines so one
// run's traffic can be correlated in the log. Returns the same client.
func (c *Client) WithSession(id string) *Client {
	if id != "" {
		c.log = logger.WithSession(id).With(slog.String("component", "api"))
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthStatus probes whether the backend holds valid Google credentials.
func (c *Client) AuthStatus(ctx context.Context) (*AuthStatusResponse, error) {
	var resp AuthStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/status", nil, &resp, c.http); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthURL fetches the authorization URL the user must visit to grant the
// backend access.
func (c *Client) AuthURL(ctx context.Context) (*AuthURLResponse, error) {
	var resp AuthURLResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/url", nil, &resp, c.http); err != nil {
		return nil, err
	}
	if !resp.Success || resp.AuthURL == "" {
		return nil, apperrors.ServerRejected("/api/auth/url", "no authorization URL returned")
	}
	return &resp, nil
}

// Health checks that the backend is up.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &resp, c.http); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat sends a user message with its context window and returns the
// assistant reply. Messages over MaxMessageLength are rejected locally.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if utf8.RuneCountInString(req.Message) > MaxMessageLength {
		return nil, apperrors.MessageTooLong(MaxMessageLength)
	}

	c.log.Debug("chat request", "chars", utf8.RuneCountInString(req.Message), "history", len(req.History), "row", req.RowNumber)

	var resp ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat", req, &resp, c.chat); err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.Error == "not_authenticated" {
			return nil, apperrors.NotAuthenticated()
		}
		detail := resp.Error
		if resp.Details != "" {
			detail += ": " + resp.Details
		}
		return nil, apperrors.ServerRejected("/api/chat", detail)
	}

	c.log.Debug("chat response", "type", resp.QueryType, "row", resp.RowNumber, "chars", len(resp.Response))
	return &resp, nil
}

// Feedback records a like/dislike/cleared rating for an assistant reply.
func (c *Client) Feedback(ctx context.Context, req FeedbackRequest) (*FeedbackResponse, error) {
	c.log.Debug("feedback", "id", req.MessageID, "type", req.FeedbackType, "row", req.RowNumber)

	var resp FeedbackResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/feedback", req, &resp, c.http); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.ServerRejected("/api/feedback", resp.Error)
	}
	return &resp, nil
}

// Documents lists the source documents the backend answers from.
func (c *Client) Documents(ctx context.Context) (*DocumentsResponse, error) {
	var resp DocumentsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents", nil, &resp, c.http); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.ServerRejected("/api/documents", resp.Error)
	}
	return &resp, nil
}

// Statistics fetches consultation counters from the backend sheet.
func (c *Client) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	var resp StatisticsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/statistics", nil, &resp, c.http); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.ServerRejected("/api/statistics", resp.Error)
	}
	return &resp, nil
}

// RefreshCache asks the backend to re-read its document and website caches.
func (c *Client) RefreshCache(ctx context.Context) (*RefreshCacheResponse, error) {
	var resp RefreshCacheResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/refresh-cache", nil, &resp, c.http); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.ServerRejected("/api/refresh-cache", resp.Error)
	}
	return &resp, nil
}

// doJSON issues a request and decodes the JSON envelope. The backend answers
// application failures (400/500) with the same envelope shape as successes,
// so non-2xx bodies are decoded too and callers inspect the failure flag.
// A 401 means the backend lost its Google credentials and maps straight to
// an auth error.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any, httpClient *http.Client) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.RequestCanceled(path, ctx.Err())
		}
		return apperrors.RequestFailed(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.NotAuthenticated()
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return apperrors.ServerRejected(path, resp.Status)
		}
		return apperrors.RequestFailed(path, err)
	}
	return nil
}
