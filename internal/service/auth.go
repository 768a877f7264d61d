package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// expectedAudience is the audience claim the identity provider stamps on
// every access token it issues.
const expectedAudience = "authenticated"

// AuthService verifies access tokens issued by the external identity
// provider. It never issues tokens itself.
type AuthService struct {
	secret []byte
	parser *jwt.Parser
}

// NewAuthService creates the verifier. The secret is the provider's shared
// HMAC signing key.
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	return &AuthService{
		secret: []byte(secret),
		// Pinning the accepted algorithm closes the classic alg-confusion
		// hole: a token signed any other way never reaches verification.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		),
	}, nil
}

// VerifyCredential validates a raw token string and returns the subject
// identifier from its "sub" claim.
//
// Errors: ErrUnauthenticated for an empty credential, ErrTokenExpired when
// the signature checks out but the expiry claim is past, ErrInvalidToken
// for every other failure (bad signature, wrong algorithm, wrong audience,
// malformed payload, missing subject).
func (s *AuthService) VerifyCredential(credential string) (string, error) {
	if credential == "" {
		return "", ErrUnauthenticated
	}

	token, err := s.parser.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if !claims.VerifyAudience(expectedAudience, true) {
		return "", ErrInvalidToken
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
