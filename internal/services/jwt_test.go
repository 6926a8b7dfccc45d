package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWT(t *testing.T, access, refresh time.Duration) *JWTService {
	t.Helper()
	return NewJWTService("test-secret", access, refresh)
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := newJWT(t, 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "test@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "studio-api", claims.Issuer)

	subjectID, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, subjectID)
}

func TestJWTService_ValidateAccessToken_Rejections(t *testing.T) {
	svc := newJWT(t, 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	otherSecret := NewJWTService("other-secret", 15*time.Minute, 24*time.Hour)
	foreignSigned, err := otherSecret.GenerateTokenPair(userID, "test@example.com")
	require.NoError(t, err)

	// Well-formed HS256 token, same secret, wrong issuer.
	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		Issuer:    "someone-else",
		Subject:   userID.String(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Right secret and issuer but an unexpected algorithm.
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		Issuer:    "studio-api",
		Subject:   userID.String(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9."},
		{"wrong secret", foreignSigned.AccessToken},
		{"wrong issuer", wrongIssuer},
		{"wrong algorithm", wrongAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	svc := newJWT(t, 1*time.Millisecond, 24*time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "test@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateRefreshToken_Expired(t *testing.T) {
	svc := newJWT(t, 15*time.Minute, 1*time.Millisecond)

	pair, err := svc.GenerateTokenPair(uuid.New(), "test@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateRefreshToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateRefreshToken_WrongSecret(t *testing.T) {
	issuedBy := newJWT(t, 15*time.Minute, 24*time.Hour)
	validatedBy := NewJWTService("rotated-secret", 15*time.Minute, 24*time.Hour)

	pair, err := issuedBy.GenerateTokenPair(uuid.New(), "test@example.com")
	require.NoError(t, err)

	_, err = validatedBy.ValidateRefreshToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokensCarryUniqueIDs(t *testing.T) {
	svc := newJWT(t, 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	pair1, err := svc.GenerateTokenPair(userID, "test@example.com")
	require.NoError(t, err)
	pair2, err := svc.GenerateTokenPair(userID, "test@example.com")
	require.NoError(t, err)

	// The jti claim keeps two pairs issued in the same second distinct.
	assert.NotEqual(t, pair1.RefreshToken, pair2.RefreshToken)
}

func TestJWTService_RefreshExpiry(t *testing.T) {
	svc := newJWT(t, 15*time.Minute, 24*time.Hour)
	assert.Equal(t, 24*time.Hour, svc.RefreshExpiry())
}

func TestHashToken(t *testing.T) {
	hash := HashToken("my-refresh-token")

	assert.Equal(t, hash, HashToken("my-refresh-token"))
	assert.Len(t, hash, 64)
	assert.NotEqual(t, hash, HashToken("different-token"))
}
