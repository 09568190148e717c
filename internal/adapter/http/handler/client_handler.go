package handler

import (
	"merchant-reporting-bff/internal/adapter/http/dto"
	"merchant-reporting-bff/internal/adapter/http/middleware"
	"merchant-reporting-bff/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientSvc ports.ClientService
}

func NewClientHandler(clientSvc ports.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

// GetClientInfo handles POST /api/v1/clients/info.
func (h *ClientHandler) GetClientInfo(c *gin.Context) {
	var req dto.ClientInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.clientSvc.GetClientInfo(c.Request.Context(), req.ToDomain(), middleware.AuthToken(c))
	respond(c, info, err)
}
