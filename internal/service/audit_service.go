package service

import (
	"context"
	"time"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const auditPersistTimeout = 5 * time.Second

type auditService struct {
	repo ports.AuditRepository
	fp   *Fingerprinter
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, fp *Fingerprinter, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, fp: fp, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.ActorHash == "" && s.fp != nil {
		entry.ActorHash = s.fp.Fingerprint(entry.Actor)
	}

	go func() {
		evt := s.log.Info()
		if !entry.Succeeded() {
			evt = s.log.Warn()
		}
		evt.
			Str("request_id", entry.RequestID).
			Str("action", string(entry.Action)).
			Str("actor", entry.ActorHash).
			Int("status", entry.StatusCode).
			Int64("latency_ms", entry.LatencyMs).
			Str("ip", entry.IPAddress).
			Msg("audit")

		if s.repo == nil {
			return
		}
		persistCtx, cancel := context.WithTimeout(context.Background(), auditPersistTimeout)
		defer cancel()
		if err := s.repo.Create(persistCtx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
	}()
}
