package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fatflowers/membership/internal/app/service/account"
	"github.com/fatflowers/membership/pkg/types"
)

type stubParser map[string]*account.Session

func (p stubParser) ParseToken(token string) (*account.Session, error) {
	if s, ok := p[token]; ok {
		return s, nil
	}
	return nil, errors.New("bad token")
}

func newRouter(log *zap.SugaredLogger, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware(), RequestLoggerMiddleware(log), AccessLogMiddleware(log))
	r.GET("/x", handlers...)
	return r
}

func do(r http.Handler, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTraceAndAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()
	r := newRouter(log, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, http.Header{"X-Request-Id": {"trace-123"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))

	entries := logs.FilterMessage("http_access").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "trace-123", fields["trace_id"])
	assert.Equal(t, "/x", fields["path"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])

	w = do(r, nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()
	parser := stubParser{
		"admin-token": {IdentityID: "admin-1", Role: types.RoleAdmin},
		"user-token":  {IdentityID: "user-1", Role: types.RoleUser},
	}

	var seen *account.Session
	r := newRouter(log, AuthMiddleware(parser, log), RequireRole(types.RoleAdmin, log), func(c *gin.Context) {
		seen = account.SessionFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, do(r, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.Header{"Authorization": {"Basic abc"}}).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.Header{"Authorization": {"Bearer nope"}}).Code)

	w := do(r, http.Header{"Authorization": {"Bearer user-token"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":40300`)

	logs.TakeAll()
	w = do(r, http.Header{"Authorization": {"Bearer admin-token"}})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "admin-1", seen.IdentityID)

	access := logs.FilterMessage("http_access").All()
	require.Len(t, access, 1)
	assert.Equal(t, "admin-1", access[0].ContextMap()["user_id"])
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(60, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"), "buckets are per client")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	log := zap.NewNop().Sugar()
	l := NewRateLimiter(1, 1)
	r := newRouter(log, l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(r, nil).Code)
	w := do(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"code":42900`)
}
