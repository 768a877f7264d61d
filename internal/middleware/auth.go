package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/service"
)

// ErrMissingAuthHeader marks a request with no Authorization header.
var ErrMissingAuthHeader = errors.New("missing Authorization header")

// Auth returns a gin middleware that verifies the Bearer credential with
// the given verifier and stores the subject id under "user_id".
func Auth(verifier *service.AuthService) gin.HandlerFunc {
	if verifier == nil {
		panic("AuthService cannot be nil for Auth middleware")
	}

	return func(c *gin.Context) {
		tokenStr, err := extractToken(c)
		if err != nil {
			logrus.WithError(err).Warn("Auth middleware: failed to extract token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		subject, err := verifier.VerifyCredential(tokenStr)
		if err != nil {
			logCtx := logrus.WithError(err)
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				logCtx.Warn("Auth middleware: token expired")
			default:
				logCtx.Warn("Auth middleware: invalid token")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", subject)
		logrus.WithField("user_id", subject).Debug("Auth middleware: user authenticated")
		c.Next()
	}
}

// extractToken pulls the credential from a "Bearer <token>" header.
func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("malformed Authorization header")
	}
	return parts[1], nil
}
