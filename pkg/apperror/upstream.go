package apperror

import (
	"fmt"
	"net/http"
)

// Kind classifies an upstream failure by status class.
type Kind string

const (
	KindClient     Kind = "CLIENT_ERROR" // 4xx
	KindServer     Kind = "SERVER_ERROR" // 5xx
	KindUnexpected Kind = "UNEXPECTED"   // any other non-2xx (1xx, 3xx)
)

// UpstreamError is a non-2xx answer from the upstream reporting API.
// It is returned unchanged through the service layer; Error() yields the
// upstream status line exactly as received (e.g. "401 Unauthorized").
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       []byte
}

// NewUpstreamError builds an UpstreamError. An empty status falls back to
// "<code> <reason phrase>".
func NewUpstreamError(statusCode int, status string, body []byte) *UpstreamError {
	if status == "" {
		status = fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	}
	return &UpstreamError{
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}
}

func (e *UpstreamError) Error() string {
	return e.Status
}

// Kind reports whether the failure is a client (4xx) or server (5xx) error.
func (e *UpstreamError) Kind() Kind {
	switch {
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return KindClient
	case e.StatusCode >= 500 && e.StatusCode < 600:
		return KindServer
	default:
		return KindUnexpected
	}
}

func (e *UpstreamError) IsClientError() bool { return e.Kind() == KindClient }

func (e *UpstreamError) IsServerError() bool { return e.Kind() == KindServer }

// Code returns the error code used in the local error envelope.
func (e *UpstreamError) Code() string {
	switch e.Kind() {
	case KindClient:
		return "UPSTREAM_4XX"
	case KindServer:
		return "UPSTREAM_5XX"
	default:
		return "UPSTREAM_UNEXPECTED"
	}
}
