package middleware

import (
	"net/http"
	"time"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditLog records every proxied call, failed ones included, once the
// response has been written.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method != http.MethodPost {
			return
		}
		action := mapPathToAction(c.Request.URL.Path)
		if action == "" {
			return
		}

		entry := &domain.AuditLog{
			RequestID:  c.GetString(response.CtxRequestID),
			Action:     action,
			Actor:      c.GetString(CtxActor),
			StatusCode: c.Writer.Status(),
			IPAddress:  c.ClientIP(),
			LatencyMs:  time.Since(start).Milliseconds(),
		}
		if mid, exists := c.Get(CtxMerchantID); exists {
			if id, ok := mid.(int); ok {
				entry.MerchantID = &id
			}
		}

		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapPathToAction(path string) domain.AuditAction {
	switch path {
	case "/api/v1/merchant/user/login":
		return domain.AuditActionLogin
	case "/api/v1/merchant/user/info":
		return domain.AuditActionUserInfo
	case "/api/v1/reports/refunds":
		return domain.AuditActionRefundsReport
	case "/api/v1/clients/info":
		return domain.AuditActionClientInfo
	}
	return ""
}
