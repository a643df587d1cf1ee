package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtSecret = strings.Repeat("k", 32)

func TestAuthService_IssueAndVerify(t *testing.T) {
	svc := NewAuthService(jwtSecret)

	token, err := svc.IssueToken("ops@example.com", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Sub)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_RejectsExpired(t *testing.T) {
	svc := NewAuthService(jwtSecret)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.IssueToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthService_RejectsForeignSecret(t *testing.T) {
	token, err := NewAuthService(strings.Repeat("z", 32)).IssueToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = NewAuthService(jwtSecret).VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthService_RejectsMissingExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops", "role": "admin"}).
		SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	_, err = NewAuthService(jwtSecret).VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthService_RejectsNoneAlg(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "ops", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewAuthService(jwtSecret).VerifyToken(token)
	assert.Error(t, err)
}
