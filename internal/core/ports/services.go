package ports

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"

	"merchant-reporting-bff/internal/core/domain"
)

// UserService authenticates merchant users and looks up their profiles
// against the upstream reporting API.
//
// A nil result with a nil error means the upstream answered 2xx with an
// empty body. Upstream non-2xx answers come back as *apperror.UpstreamError,
// unchanged.
type UserService interface {
	Login(ctx context.Context, credentials domain.Credentials) (*domain.AuthToken, error)
	GetMerchantUserInformation(ctx context.Context, req domain.MerchantUserRequest, authToken string) (*domain.MerchantUserInfoResponse, error)
}

// ReportService forwards report requests to the upstream reporting API.
type ReportService interface {
	GetRefundsReport(ctx context.Context, req domain.RefundsReportRequest, authToken string) (*domain.RefundReportResponse, error)
}

// ClientService looks up customer data behind an upstream transaction.
type ClientService interface {
	GetClientInfo(ctx context.Context, req domain.ClientInfoRequest, authToken string) (*domain.ClientInfoResponse, error)
}

// AuditService records proxied calls. Log must not block the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// TokenInspector reads claims from an upstream-issued token without
// verifying it; the upstream API remains the authority on validity.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}

// TokenClaims are the upstream token fields used for auditing and rate limiting.
type TokenClaims struct {
	MerchantUserID int
	MerchantID     int
}
