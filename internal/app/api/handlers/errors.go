package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/app/service/account"
	"github.com/fatflowers/membership/internal/app/service/membership"
	"github.com/fatflowers/membership/internal/app/service/report"
	"github.com/fatflowers/membership/pkg/logctx"
	"github.com/fatflowers/membership/pkg/response"
)

// codeFor maps service errors onto response codes. Unknown errors are internal.
func codeFor(err error) response.APIResponseCode {
	switch {
	case errors.Is(err, membership.ErrInvalidInput),
		errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, report.ErrInvalidRequest):
		return response.APIResponseCodeBadRequest
	case errors.Is(err, membership.ErrInvalidTransition):
		return response.APIResponseCodeInvalidTransition
	case errors.Is(err, membership.ErrNotFound), errors.Is(err, account.ErrNotFound):
		return response.APIResponseCodeNotFound
	case errors.Is(err, membership.ErrConcurrencyConflict), errors.Is(err, account.ErrEmailTaken):
		return response.APIResponseCodeConflict
	case errors.Is(err, account.ErrInvalidCredentials), errors.Is(err, account.ErrInvalidToken):
		return response.APIResponseCodeUnauthorized
	case errors.Is(err, membership.ErrOverflow):
		return response.APIResponseCodeMembershipOverflow
	default:
		return response.APIResponseCodeError
	}
}

// writeError renders err in the envelope. Client errors carry their message;
// internal errors are logged and hidden.
func writeError(c *gin.Context, log *zap.SugaredLogger, err error) {
	code := codeFor(err)
	if code >= response.APIResponseCodeError {
		logctx.FromGin(c, log).Errorw("request failed", "path", c.FullPath(), "error", err)
		if code == response.APIResponseCodeError {
			c.JSON(http.StatusOK, response.ErrorT[any](code, nil))
			return
		}
	}
	c.JSON(http.StatusOK, response.ErrorT[any](code, err.Error()))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
}
