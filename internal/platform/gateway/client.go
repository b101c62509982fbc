// Package gateway is the single outbound path to the backing REST services.
// Every request carries the caller's backend token when one is present in the
// context; there are no retries, no token refresh, and no request queueing.
// A 401 from a backend surfaces to the caller unchanged.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

type tokenKey struct{}

// WithToken returns a context carrying the backend credential to attach to
// outbound requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the backend credential stored by WithToken, or ""
// when the request is unauthenticated.
func TokenFromContext(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}

// Client wraps an HTTP client tuned for service-to-service calls.
type Client struct {
	http *http.Client
}

// New creates a gateway client. The timeout bounds the whole request,
// including body read.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// NewWithHTTPClient wraps an existing http.Client; used by tests.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Do issues a JSON request. A non-nil body is encoded as JSON; a non-nil out
// receives the decoded response body. Responses outside 2xx produce an
// *APIError carrying the status code and the raw error body.
func (c *Client) Do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Token "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, url, err)
		}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, url string, out any) error {
	return c.Do(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	return c.Do(ctx, http.MethodPost, url, body, out)
}

func (c *Client) Put(ctx context.Context, url string, body, out any) error {
	return c.Do(ctx, http.MethodPut, url, body, out)
}

func (c *Client) Patch(ctx context.Context, url string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, url, body, out)
}

func (c *Client) Delete(ctx context.Context, url string) error {
	return c.Do(ctx, http.MethodDelete, url, nil, nil)
}
