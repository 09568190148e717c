package service

import (
	"fmt"
	"strconv"

	"merchant-reporting-bff/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenInspector implements ports.TokenInspector for the JWTs issued by
// the upstream login endpoint. The signature is not checked: the signing
// key lives upstream, which validates every forwarded token anyway.
type JWTTokenInspector struct {
	parser *jwt.Parser
}

// NewJWTTokenInspector creates a new token inspector.
func NewJWTTokenInspector() *JWTTokenInspector {
	return &JWTTokenInspector{parser: jwt.NewParser()}
}

// Inspect decodes the token payload and returns the merchant claims.
// Missing claims are left as zero values.
func (i *JWTTokenInspector) Inspect(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	return &ports.TokenClaims{
		MerchantUserID: intClaim(claims, "merchantUserId"),
		MerchantID:     intClaim(claims, "merchantId"),
	}, nil
}

func intClaim(claims jwt.MapClaims, key string) int {
	switch v := claims[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
