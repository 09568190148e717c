package handler

import (
	"errors"
	"net/http"

	"merchant-reporting-bff/pkg/apperror"
	"merchant-reporting-bff/pkg/response"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the request body into req, writing the
// error response itself when that fails. Values are left exactly as sent.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// respond writes a service result: error envelope, 204 for an absent
// result, or the 200 success envelope.
func respond[T any](c *gin.Context, result *T, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.NoContent(c)
		return
	}
	response.OK(c, result)
}
