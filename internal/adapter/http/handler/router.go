package handler

import (
	"merchant-reporting-bff/config"
	"merchant-reporting-bff/internal/adapter/http/middleware"
	redisStore "merchant-reporting-bff/internal/adapter/storage/redis"
	"merchant-reporting-bff/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	UserSvc        ports.UserService
	ReportSvc      ports.ReportService
	ClientSvc      ports.ClientService
	TokenInspector ports.TokenInspector       // nil = claims not read
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimits     config.RateLimitConfig
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	OpenAPISpec    []byte
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The gin mode is left to the caller.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	docs := NewDocsHandler(deps.OpenAPISpec)
	r.GET("/", docs.Redirect)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := middleware.RateLimitRules(deps.RateLimits)

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	userHandler := NewUserHandler(deps.UserSvc)
	v1.POST("/merchant/user/login", rl(middleware.RateLimitGroupLogin), userHandler.Login)

	// --- Token-carrying routes, forwarded on the caller's behalf ---
	bearer := middleware.BearerToken(deps.TokenInspector, deps.Logger)
	reportHandler := NewReportHandler(deps.ReportSvc)
	clientHandler := NewClientHandler(deps.ClientSvc)

	authed := v1.Group("", bearer, rl(middleware.RateLimitGroupAPI))
	{
		authed.POST("/merchant/user/info", userHandler.GetMerchantUserInformation)
		authed.POST("/reports/refunds", reportHandler.GetRefundsReport)
		authed.POST("/clients/info", clientHandler.GetClientInfo)
	}

	return r
}
