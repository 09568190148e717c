package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/apperror"
	"merchant-reporting-bff/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"

	// Context keys
	CtxAuthToken      = "auth_token"
	CtxMerchantUserID = "merchant_user_id"
	CtxMerchantID     = "merchant_id"
	CtxActor          = "actor"

	maxRequestIDLen = 128
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		c.Set(response.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// BearerToken guards routes that call the upstream API on a user's behalf.
// A missing or blank Authorization header fails with an AuthorizationError.
// The token itself is not validated here: the upstream API is the authority
// and answers 401 for tokens it does not accept. Readable claims are stored
// for auditing and rate limiting.
func BearerToken(inspector ports.TokenInspector, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader(HeaderAuthorization))
		if token == "" {
			response.Error(c, apperror.ErrMissingToken())
			c.Abort()
			return
		}
		c.Set(CtxAuthToken, token)

		if inspector != nil {
			claims, err := inspector.Inspect(token)
			if err != nil {
				log.Debug().Err(err).Msg("token claims unreadable, forwarding as opaque")
			} else {
				if claims.MerchantUserID != 0 {
					c.Set(CtxMerchantUserID, claims.MerchantUserID)
					c.Set(CtxActor, strconv.Itoa(claims.MerchantUserID))
				}
				if claims.MerchantID != 0 {
					c.Set(CtxMerchantID, claims.MerchantID)
				}
			}
		}

		c.Next()
	}
}

// AuthToken returns the token stored by BearerToken.
func AuthToken(c *gin.Context) string {
	return c.GetString(CtxAuthToken)
}

// extractToken accepts "Bearer <token>" (any case) or a raw token.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	scheme, rest, found := strings.Cut(header, " ")
	if strings.EqualFold(scheme, "Bearer") {
		if !found {
			return ""
		}
		return strings.TrimSpace(rest)
	}
	return header
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(response.CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("request_id", c.GetString(response.CtxRequestID)).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Reads past the limit fail with *http.MaxBytesError.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
