package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/app/service/account"
	"github.com/fatflowers/membership/pkg/logctx"
	"github.com/fatflowers/membership/pkg/response"
	"github.com/fatflowers/membership/pkg/types"
)

// SessionKey is the gin.Context key holding the *account.Session.
const SessionKey = "session"

// TokenParser verifies bearer tokens. *account.Service implements it.
type TokenParser interface {
	ParseToken(token string) (*account.Session, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <jwt>" header and stores
// the caller's session in gin.Context and the request context.
func AuthMiddleware(parser TokenParser, base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}
		session, err := parser.ParseToken(strings.TrimSpace(token))
		if err != nil {
			logctx.FromGin(c, base).Infow("rejected bearer token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(SessionKey, session)
		ctx := account.WithSession(c.Request.Context(), session)
		ctx = logctx.WithUserID(ctx, session.IdentityID)
		c.Request = c.Request.WithContext(ctx)
		setRequestLogger(c, logctx.FromGin(c, base).With("user_id", session.IdentityID))

		c.Next()
	}
}

// RequireRole rejects callers whose session does not carry role. It must run after
// AuthMiddleware.
func RequireRole(role types.Role, base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "not signed in"))
			return
		}
		if session.Role != role {
			logctx.FromGin(c, base).Infow("forbidden", "required_role", role, "role", session.Role, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorT[any](response.APIResponseCodeForbidden, "requires role "+string(role)))
			return
		}
		c.Next()
	}
}

// SessionFrom returns the authenticated session, or nil.
func SessionFrom(c *gin.Context) *account.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(*account.Session); ok {
			return s
		}
	}
	return account.SessionFromContext(c.Request.Context())
}
