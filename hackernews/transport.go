package hackernews

//go:generate mockgen -source=transport.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Transport performs a GET against url and decodes the JSON body into v.
// Failures are reported as *TransportError.
type Transport interface {
	Get(ctx context.Context, url string, v any) error
}

// HTTPTransport is the net/http Transport.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

// NewHTTPTransport creates a transport whose requests are bounded by timeout.
// A non-positive timeout selects 10s.
func NewHTTPTransport(timeout time.Duration, userAgent string) *HTTPTransport {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPTransport{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// WithHTTPClient returns a copy using hc for requests.
func (t *HTTPTransport) WithHTTPClient(hc *http.Client) *HTTPTransport {
	t2 := *t
	if hc != nil {
		t2.client = hc
	}
	return &t2
}

func (t *HTTPTransport) Get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{Kind: FailureNetwork, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return &TransportError{Kind: FailureNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &TransportError{Kind: FailureHTTP, URL: url, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Kind: FailureNetwork, URL: url, Err: err}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &TransportError{Kind: FailureParse, URL: url, Err: err}
	}
	return nil
}
