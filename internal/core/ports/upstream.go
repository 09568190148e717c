package ports

//go:generate mockgen -source=upstream.go -destination=mocks/upstream_mock.go -package=mocks

import "context"

// UpstreamClient issues JSON POST requests to the upstream reporting API.
//
// PostJSON sends body to url, attaching authToken as the Authorization
// header when it is non-empty, and decodes a 2xx body into out. found is
// false when the 2xx body was empty. Any non-2xx answer is returned as
// *apperror.UpstreamError; the request is attempted exactly once.
type UpstreamClient interface {
	PostJSON(ctx context.Context, url string, body any, authToken string, out any) (found bool, err error)
}
