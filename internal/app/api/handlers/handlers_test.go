package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/app/api/middleware"
	"github.com/fatflowers/membership/internal/app/service/account"
	"github.com/fatflowers/membership/internal/app/service/membership"
	"github.com/fatflowers/membership/internal/app/service/report"
	"github.com/fatflowers/membership/internal/platform/db"
	"github.com/fatflowers/membership/pkg/config"
	"github.com/fatflowers/membership/pkg/response"
	"github.com/fatflowers/membership/pkg/types"
)

type envelope struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    json.RawMessage          `json:"data"`
}

type testAPI struct {
	t *testing.T
	r *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()
	cfg := &config.Config{
		Database: config.DBConfig{Driver: config.DBDriverSQLite, DSN: "file::memory:"},
		Auth:     config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour, SignUpRate: 600, SignUpBurst: 100},
		Report:   config.ReportConfig{ExpiringWithinDays: 30},
	}
	gdb, err := db.NewDB(log, cfg)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(log, gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	accounts := account.NewService(cfg, gdb, log)
	memberships := membership.NewService(cfg, gdb, log, nil)
	reports := report.New(cfg, gdb, log)

	r := gin.New()
	r.Use(middleware.TraceMiddleware(), middleware.RequestLoggerMiddleware(log))
	RegisterHealthRoutes(r, gdb)
	v1 := r.Group("/api/v1")
	RegisterAuthRoutes(v1.Group("/auth"), accounts, middleware.NewRateLimiter(cfg.Auth.SignUpRate, cfg.Auth.SignUpBurst), log)
	authed := v1.Group("", middleware.AuthMiddleware(accounts, log))
	authed.GET("/me", ApiMe(accounts, log))
	RegisterMembershipRoutes(authed.Group("/membership"), memberships, reports, log)
	RegisterAdminRoutes(authed.Group("/admin", middleware.RequireRole(types.RoleAdmin, log)), memberships, log)

	return &testAPI{t: t, r: r}
}

func (a *testAPI) call(method, path, token string, body any) (int, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (a *testAPI) ok(method, path, token string, body, out any) {
	a.t.Helper()
	status, env := a.call(method, path, token, body)
	require.Equal(a.t, http.StatusOK, status)
	require.Equal(a.t, response.APIResponseCodeOK, env.Code, string(env.Data))
	if out != nil {
		require.NoError(a.t, json.Unmarshal(env.Data, out))
	}
}

func (a *testAPI) signUpAndIn(email string) string {
	a.t.Helper()
	a.ok(http.MethodPost, "/api/v1/auth/sign_up", "", map[string]string{"email": email, "password": "password-1"}, nil)
	var res account.SignInResponse
	a.ok(http.MethodPost, "/api/v1/auth/sign_in", "", map[string]string{"email": email, "password": "password-1"}, &res)
	require.NotEmpty(a.t, res.Token)
	return res.Token
}

type item struct {
	ID               string `json:"id"`
	MembershipNumber string `json:"membership_number"`
	Status           string `json:"status"`
	EndDate          string `json:"end_date"`
	Version          int64  `json:"version"`
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	var data map[string]string
	api.ok(http.MethodGet, "/healthz", "", nil, &data)
	assert.Equal(t, "ok", data["database"])
}

func TestMembershipFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.signUpAndIn("admin@example.com")
	user := api.signUpAndIn("user@example.com")

	var me struct {
		Role string `json:"role"`
	}
	api.ok(http.MethodGet, "/api/v1/me", admin, nil, &me)
	assert.Equal(t, "admin", me.Role)
	api.ok(http.MethodGet, "/api/v1/me", user, nil, &me)
	assert.Equal(t, "user", me.Role)

	create := map[string]string{"member_name": "Ann Lee", "email": "ann@example.com", "duration": "1_year"}
	status, env := api.call(http.MethodPost, "/api/v1/admin/create_membership", user, create)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, response.APIResponseCodeForbidden, env.Code)

	var created item
	api.ok(http.MethodPost, "/api/v1/admin/create_membership", admin, create, &created)
	assert.Equal(t, "MEM000001", created.MembershipNumber)
	assert.Equal(t, "active", created.Status)

	var got item
	api.ok(http.MethodGet, "/api/v1/membership/number/MEM000001", user, nil, &got)
	assert.Equal(t, created.ID, got.ID)
	api.ok(http.MethodGet, "/api/v1/membership/"+created.ID, user, nil, &got)
	assert.Equal(t, created.EndDate, got.EndDate)

	var extended item
	api.ok(http.MethodPost, "/api/v1/admin/extend_membership", admin,
		map[string]any{"id": created.ID, "duration": "6_months", "expected_version": created.Version}, &extended)
	assert.Equal(t, created.Version+1, extended.Version)
	assert.NotEqual(t, created.EndDate, extended.EndDate)

	// stale version
	_, env = api.call(http.MethodPost, "/api/v1/admin/cancel_membership", admin,
		map[string]any{"id": created.ID, "expected_version": created.Version})
	assert.Equal(t, response.APIResponseCodeConflict, env.Code)

	var cancelled item
	api.ok(http.MethodPost, "/api/v1/admin/cancel_membership", admin, map[string]any{"id": created.ID, "reason": "requested"}, &cancelled)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, env = api.call(http.MethodPost, "/api/v1/admin/extend_membership", admin, map[string]any{"id": created.ID, "duration": "1_year"})
	assert.Equal(t, response.APIResponseCodeInvalidTransition, env.Code)

	var list membership.ScanResponse
	api.ok(http.MethodPost, "/api/v1/membership/list", user, map[string]any{
		"filters": []map[string]any{{"field": "status", "operator": "eq", "values": []string{"cancelled"}}},
	}, &list)
	assert.Equal(t, int64(1), list.Total)

	var logs struct {
		Items []struct {
			Action     string `json:"action"`
			OperatorID string `json:"operator_id"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	api.ok(http.MethodPost, "/api/v1/membership/logs", user, map[string]any{}, &logs)
	require.Equal(t, int64(3), logs.Total)
	assert.Equal(t, "cancel", logs.Items[0].Action)
	assert.NotEmpty(t, logs.Items[0].OperatorID)

	var rep report.Response
	api.ok(http.MethodPost, "/api/v1/membership/report", user, map[string]any{
		"data_items": []map[string]string{{"id": "status_count"}, {"id": "daily_transaction_count"}},
	}, &rep)
	assert.Contains(t, rep.DataItems[report.ReportTypeStatusCount], report.ResponseDataItem{Label: "cancelled", Value: 1})
}

func TestErrorCodes(t *testing.T) {
	api := newTestAPI(t)
	admin := api.signUpAndIn("admin@example.com")

	_, env := api.call(http.MethodPost, "/api/v1/admin/create_membership", admin, map[string]string{"member_name": "Ann", "email": "not-an-email", "duration": "1_year"})
	assert.Equal(t, response.APIResponseCodeBadRequest, env.Code)

	_, env = api.call(http.MethodPost, "/api/v1/admin/create_membership", admin, map[string]string{"member_name": "Ann", "email": "ann@example.com", "duration": "3_months"})
	assert.Equal(t, response.APIResponseCodeBadRequest, env.Code)

	_, env = api.call(http.MethodGet, "/api/v1/membership/number/MEM000404", admin, nil)
	assert.Equal(t, response.APIResponseCodeNotFound, env.Code)

	_, env = api.call(http.MethodPost, "/api/v1/auth/sign_up", "", map[string]string{"email": "admin@example.com", "password": "password-1"})
	assert.Equal(t, response.APIResponseCodeConflict, env.Code)

	_, env = api.call(http.MethodPost, "/api/v1/auth/sign_in", "", map[string]string{"email": "admin@example.com", "password": "wrong-password"})
	assert.Equal(t, response.APIResponseCodeUnauthorized, env.Code)

	status, env := api.call(http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, response.APIResponseCodeUnauthorized, env.Code)

	_, env = api.call(http.MethodPost, "/api/v1/membership/report", admin, map[string]any{"data_items": []map[string]string{{"id": "daily_gmv"}}})
	assert.Equal(t, response.APIResponseCodeBadRequest, env.Code)
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want response.APIResponseCode
	}{
		{fmt.Errorf("wrap: %w", membership.ErrOverflow), response.APIResponseCodeMembershipOverflow},
		{fmt.Errorf("wrap: %w", membership.ErrConcurrencyConflict), response.APIResponseCodeConflict},
		{account.ErrInvalidToken, response.APIResponseCodeUnauthorized},
		{errors.New("boom"), response.APIResponseCodeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeFor(tt.err), tt.err.Error())
	}
}
