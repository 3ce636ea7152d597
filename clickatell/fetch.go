package clickatell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single gateway request when the caller's
// context carries no deadline of its own.
const DefaultTimeout = 10 * time.Second

// Fetcher is the transport contract for the gateway client. Fetch issues
// an HTTP GET against the given URL and returns the response body as
// text. The client never inspects HTTP status codes, only the body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher is the default net/http backed transport.
type HTTPFetcher struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewHTTPFetcher creates an HTTPFetcher with the given per-request
// timeout. A non-positive timeout falls back to DefaultTimeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Fetch implements Fetcher with a plain GET and a body slurp.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("gateway request timeout or canceled: %w", err)
		}
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gateway response: %w", err)
	}

	return string(body), nil
}
