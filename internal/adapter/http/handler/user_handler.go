package handler

import (
	"merchant-reporting-bff/internal/adapter/http/dto"
	"merchant-reporting-bff/internal/adapter/http/middleware"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles merchant user endpoints.
type UserHandler struct {
	userSvc ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc ports.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Login handles POST /api/v1/merchant/user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	c.Set(middleware.CtxActor, req.Email)

	token, err := h.userSvc.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}
	if token == nil {
		response.NoContent(c)
		return
	}

	response.OK(c, dto.LoginResponse{Token: token.Token})
}

// GetMerchantUserInformation handles POST /api/v1/merchant/user/info.
func (h *UserHandler) GetMerchantUserInformation(c *gin.Context) {
	var req dto.MerchantUserInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.userSvc.GetMerchantUserInformation(c.Request.Context(), req.ToDomain(), middleware.AuthToken(c))
	respond(c, info, err)
}
