package postgres

import (
	"context"
	"fmt"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, request_id, action, actor_hash, merchant_id, status_code, ip_address, latency_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.RequestID, string(log.Action), nullIfEmpty(log.ActorHash), log.MerchantID,
		log.StatusCode, log.IPAddress, log.LatencyMs, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting audit log: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
