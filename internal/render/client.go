// Package render is the client for the external PDF render service:
// a collaborator that accepts a JSON page-description document and
// returns rendered PDF bytes.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/productforge/forge/internal/product"
)

// ErrRejected wraps 4xx responses from the render service. Rejected
// documents are not retried: the document itself is at fault.
var ErrRejected = errors.New("render service rejected document")

// Config holds render client settings.
type Config struct {
	// BaseURL is the render service root, e.g. http://localhost:9090.
	BaseURL string
	// Attempts is the number of tries for transient failures (default 3).
	Attempts uint
	// Delay is the base delay between retries (default 1s).
	Delay time.Duration
	// Timeout bounds a single render request (default 2m).
	Timeout time.Duration
	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// Client talks to the render service.
type Client struct {
	baseURL    string
	attempts   uint
	delay      time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a render client.
func New(cfg Config) *Client {
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay == 0 {
		cfg.Delay = time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		attempts:   cfg.Attempts,
		delay:      cfg.Delay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     cfg.Logger,
	}
}

// BaseURL returns the configured render service root.
func (c *Client) BaseURL() string { return c.baseURL }

// serviceError is the JSON error body the render service returns.
type serviceError struct {
	Error string `json:"error"`
}

// Render POSTs the document to the service's /render endpoint and
// returns the PDF bytes. Transient failures (network errors, 5xx) are
// retried with backoff; 4xx responses fail immediately.
func (c *Client) Render(ctx context.Context, cfg *product.Config) ([]byte, error) {
	body, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var pdf []byte
	err = retry.Do(
		func() error {
			var attemptErr error
			pdf, attemptErr = c.renderOnce(ctx, body)
			return attemptErr
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrRejected)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("render attempt failed", "attempt", n+1, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

func (c *Client) renderOnce(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		pdf, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF body: %w", err)
		}
		return pdf, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: %s", ErrRejected, readServiceError(resp.Body, resp.StatusCode))

	default:
		return nil, fmt.Errorf("render service returned %d: %s",
			resp.StatusCode, readServiceError(resp.Body, resp.StatusCode))
	}
}

// readServiceError extracts the error message from a JSON error body,
// falling back to the status code when the body is not parseable.
func readServiceError(r io.Reader, status int) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return http.StatusText(status)
	}
	var se serviceError
	if json.Unmarshal(data, &se) == nil && se.Error != "" {
		return se.Error
	}
	return string(data)
}
