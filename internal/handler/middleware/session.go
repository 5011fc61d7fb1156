package middleware

import (
	"log/slog"
	"strings"

	"learnscape-checkout/internal/pkg/cookie"
	"learnscape-checkout/internal/pkg/sessiontoken"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware attaches the buyer identity carried by a platform session
// token. Checkout is session-optional: home-page purchases arrive without a
// token and resolve the buyer by email instead.
type SessionMiddleware struct {
	verifier *sessiontoken.Verifier
}

const ctxSessionClaimsKey = "session_claims"

func NewSessionMiddleware(verifier *sessiontoken.Verifier) *SessionMiddleware {
	return &SessionMiddleware{
		verifier: verifier,
	}
}

// OptionalSession authenticates the request if a token is present but never
// aborts: an absent, invalid or expired token just leaves the request
// unauthenticated.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.Next()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			slog.Debug("session token rejected, continuing unauthenticated", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxSessionClaimsKey, claims)
		c.Next()
	}
}

func GetSessionClaims(c *gin.Context) (*sessiontoken.Claims, bool) {
	v, exists := c.Get(ctxSessionClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := v.(*sessiontoken.Claims)
	return claims, ok
}
