package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"datarequests/internal/domain/identity"
	"datarequests/internal/infrastructure/auth"
	"datarequests/internal/shared/logger"
)

// ContextKeyUserID holds the authenticated user id, when there is one.
const ContextKeyUserID = "user_id"

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// OptionalAuth attaches the caller's user id when a valid bearer token is
// present. Requests without one proceed as anonymous; every action decides
// on its own whether that is enough.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Debugw("ignoring invalid bearer token", "error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID())
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Caller returns the identity attached by OptionalAuth, or the anonymous caller.
func Caller(c *gin.Context) identity.Caller {
	return identity.NewCaller(c.GetString(ContextKeyUserID))
}
