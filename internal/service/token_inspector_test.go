package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-only-secret"))
	require.NoError(t, err)
	return token
}

func TestJWTTokenInspector_Inspect(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"merchantUserId": 53,
		"role":           "admin",
		"merchantId":     3,
		"subMerchantIds": []int{3, 74, 93},
		"timestamp":      1444389880,
	})

	claims, err := NewJWTTokenInspector().Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, 53, claims.MerchantUserID)
	assert.Equal(t, 3, claims.MerchantID)
}

func TestJWTTokenInspector_StringClaims(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"merchantUserId": "53", "merchantId": "x"})

	claims, err := NewJWTTokenInspector().Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, 53, claims.MerchantUserID)
	assert.Equal(t, 0, claims.MerchantID)
}

func TestJWTTokenInspector_Opaque(t *testing.T) {
	_, err := NewJWTTokenInspector().Inspect("not-a-jwt")
	assert.Error(t, err)
}
