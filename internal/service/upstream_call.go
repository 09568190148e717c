package service

import (
	"context"
	"errors"

	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/apperror"

	"github.com/rs/zerolog"
)

// forward issues one upstream call and unwraps the body into *T.
// An empty 2xx body yields (nil, nil). Errors are returned unchanged.
func forward[T any](
	ctx context.Context,
	upstream ports.UpstreamClient,
	log zerolog.Logger,
	url string,
	body any,
	authToken string,
) (*T, error) {
	var out T
	found, err := upstream.PostJSON(ctx, url, body, authToken, &out)
	if err != nil {
		failureEvent(&log, err).Err(err).Str("url", url).Msg("upstream call failed")
		return nil, err
	}
	if !found {
		log.Debug().Str("url", url).Msg("upstream returned empty body")
		return nil, nil
	}
	return &out, nil
}

// failureEvent picks the log level for a failed call. Upstream 4xx answers
// are routine rejections of the caller's input.
func failureEvent(log *zerolog.Logger, err error) *zerolog.Event {
	var upErr *apperror.UpstreamError
	if errors.As(err, &upErr) {
		switch {
		case upErr.IsClientError():
			return log.Info()
		case upErr.IsServerError():
			return log.Warn()
		}
	}
	return log.Error()
}
