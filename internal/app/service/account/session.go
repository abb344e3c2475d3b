package account

import (
	"context"

	types "github.com/fatflowers/membership/pkg/types"
)

// Session is the authenticated caller of a request, passed explicitly through the
// request context instead of living in global state.
type Session struct {
	IdentityID string     `json:"identity_id"`
	Email      string     `json:"email"`
	Role       types.Role `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == types.RoleAdmin
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the request's session, or nil for anonymous requests.
func SessionFromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
