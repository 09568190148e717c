package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionLogin         AuditAction = "LOGIN"
	AuditActionUserInfo      AuditAction = "USER_INFO"
	AuditActionRefundsReport AuditAction = "REFUNDS_REPORT"
	AuditActionClientInfo    AuditAction = "CLIENT_INFO"
)

// AuditLog records one proxied call. Actor is the raw caller identity
// (email or merchant user id); only ActorHash is ever persisted.
type AuditLog struct {
	ID         uuid.UUID   `json:"id"`
	RequestID  string      `json:"request_id"`
	Action     AuditAction `json:"action"`
	Actor      string      `json:"-"`
	ActorHash  string      `json:"actor_hash,omitempty"`
	MerchantID *int        `json:"merchant_id,omitempty"`
	StatusCode int         `json:"status_code"`
	IPAddress  string      `json:"ip_address"`
	LatencyMs  int64       `json:"latency_ms"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Succeeded reports whether the proxied call answered 2xx.
func (a *AuditLog) Succeeded() bool {
	return a.StatusCode >= 200 && a.StatusCode < 300
}
