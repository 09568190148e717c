package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merchant-reporting-bff/config"
	httpHandler "merchant-reporting-bff/internal/adapter/http/handler"
	pgStorage "merchant-reporting-bff/internal/adapter/storage/postgres"
	redisStorage "merchant-reporting-bff/internal/adapter/storage/redis"
	"merchant-reporting-bff/internal/adapter/upstream"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/internal/service"
	"merchant-reporting-bff/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Merchant Reporting BFF")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		auditRepo      ports.AuditRepository
		rateLimitStore *redisStorage.RateLimitStore
		checkers       []ports.HealthChecker
	)

	// PostgreSQL backs the audit trail only; without it audit goes to the log.
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		auditRepo = pgStorage.NewAuditRepository(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	upstreamClient := upstream.NewClient(
		upstream.NewHTTPClient(cfg.Upstream.Timeout),
		cfg.Upstream.AuthScheme,
		logger.Component(log, "upstream"),
	)

	userSvc := service.NewUserService(upstreamClient, cfg.Upstream.Login.URL, cfg.Upstream.Info.URL, log)
	reportSvc := service.NewReportService(upstreamClient, cfg.Upstream.Report.URL, log)
	clientSvc := service.NewClientService(upstreamClient, cfg.Upstream.Client.URL, log)

	var auditSvc ports.AuditService
	if cfg.Audit.Enabled {
		fp := service.NewFingerprinter(cfg.Audit.FingerprintKey)
		if fp == nil {
			log.Warn().Msg("audit.fingerprint_key is empty, audit entries will not identify the caller")
		}
		auditSvc = service.NewAuditService(auditRepo, fp, logger.Component(log, "audit"))
	}

	specBytes, err := os.ReadFile(cfg.Server.SpecPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Server.SpecPath).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
		specBytes = nil
	} else {
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		UserSvc:        userSvc,
		ReportSvc:      reportSvc,
		ClientSvc:      clientSvc,
		TokenInspector: service.NewJWTTokenInspector(),
		RateLimitStore: rateLimitStore,
		RateLimits:     cfg.RateLimit,
		HealthCheckers: checkers,
		AuditSvc:       auditSvc,
		OpenAPISpec:    specBytes,
		Logger:         logger.Component(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("Server exited")
}
