package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adithya2152/devconnect/internal/service"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(subject string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": subject,
		"aud": "authenticated",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthService_VerifyCredential_Success(t *testing.T) {
	authService, err := service.NewAuthService(testSecret)
	require.NoError(t, err)

	credential := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("user-42"))

	subject, err := authService.VerifyCredential(credential)

	assert.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestAuthService_VerifyCredential_EmptyCredential(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)

	subject, err := authService.VerifyCredential("")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUnauthenticated))
	assert.Empty(t, subject)
}

func TestAuthService_VerifyCredential_Expired(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)
	claims := validClaims("user-42")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	credential := signToken(t, jwt.SigningMethodHS256, testSecret, claims)

	_, err := authService.VerifyCredential(credential)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestAuthService_VerifyCredential_WrongSecret(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)
	credential := signToken(t, jwt.SigningMethodHS256, "another-secret", validClaims("user-42"))

	_, err := authService.VerifyCredential(credential)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestAuthService_VerifyCredential_WrongAlgorithm(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)
	credential := signToken(t, jwt.SigningMethodHS512, testSecret, validClaims("user-42"))

	_, err := authService.VerifyCredential(credential)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestAuthService_VerifyCredential_WrongAudience(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)
	claims := validClaims("user-42")
	claims["aud"] = "service_role"
	credential := signToken(t, jwt.SigningMethodHS256, testSecret, claims)

	_, err := authService.VerifyCredential(credential)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestAuthService_VerifyCredential_MissingSubject(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)
	claims := validClaims("")
	delete(claims, "sub")
	credential := signToken(t, jwt.SigningMethodHS256, testSecret, claims)

	_, err := authService.VerifyCredential(credential)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestAuthService_VerifyCredential_Garbage(t *testing.T) {
	authService, _ := service.NewAuthService(testSecret)

	_, err := authService.VerifyCredential("not.a.token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestNewAuthService_EmptySecret(t *testing.T) {
	_, err := service.NewAuthService("")
	assert.Error(t, err)
}
