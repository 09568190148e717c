package response

import (
	"errors"
	"net/http"
	"time"

	"merchant-reporting-bff/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the gin context key holding the request ID.
const CtxRequestID = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NoContent sends a 204 for a successful upstream call that returned no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// Error sends an error response.
//
//   - *apperror.UpstreamError keeps the upstream status code and status line.
//   - *apperror.AuthorizationError answers 401 with its message.
//   - *apperror.AppError maps to its own code and status.
//   - anything else is a 500.
func Error(c *gin.Context, err error) {
	var upErr *apperror.UpstreamError
	if errors.As(err, &upErr) {
		writeError(c, upErr.StatusCode, upErr.Code(), upErr.Status)
		return
	}

	var authErr *apperror.AuthorizationError
	if errors.As(err, &authErr) {
		writeError(c, authErr.HTTPStatus(), "AUTH_001", authErr.Message)
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		writeError(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
		return
	}

	// Unknown error -> 500
	writeError(c, http.StatusInternalServerError, "SYS_000", "Internal server error")
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		ErrorCode: code,
		Message:   message,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
