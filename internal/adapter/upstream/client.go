package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"merchant-reporting-bff/pkg/apperror"

	"github.com/rs/zerolog"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns the http.Client used for upstream calls. The timeout
// covers the whole exchange, body included.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Client implements ports.UpstreamClient. It is stateless apart from its
// configuration and is safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	authScheme string
	log        zerolog.Logger
}

// NewClient creates an upstream client. authScheme prefixes the token in the
// Authorization header ("Bearer" gives "Bearer <token>"); empty sends the
// raw token.
func NewClient(httpClient HTTPClient, authScheme string, log zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		authScheme: authScheme,
		log:        log,
	}
}

// PostJSON sends body as JSON to url and decodes a 2xx answer into out.
//
// found is false when the upstream answered 2xx with an empty or null body.
// A non-2xx answer is returned as *apperror.UpstreamError carrying the
// status line exactly as received. There is no retry.
func (c *Client) PostJSON(ctx context.Context, url string, body any, authToken string, out any) (bool, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("encode upstream request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("create upstream request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", c.authorization(authToken))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Dur("latency", time.Since(start)).Msg("upstream request failed")
		return false, apperror.ErrUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false, apperror.ErrUpstreamUnavailable(fmt.Errorf("read upstream body: %w", err))
	}

	c.log.Debug().
		Str("method", http.MethodPost).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("upstream call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, apperror.NewUpstreamError(resp.StatusCode, resp.Status, respBody)
	}

	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, apperror.ErrUpstreamResponse(fmt.Errorf("decode upstream body: %w", err))
	}
	return true, nil
}

func (c *Client) authorization(token string) string {
	if c.authScheme == "" {
		return token
	}
	return c.authScheme + " " + token
}
