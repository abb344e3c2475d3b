package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/app/api/middleware"
	"github.com/fatflowers/membership/internal/app/service/account"
	"github.com/fatflowers/membership/pkg/response"
)

// @Summary      Sign up
// @Description  Registers an identity. The first identity ever registered becomes admin; all later ones are users.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body account.SignUpRequest true "Sign-up request"
// @Success      200  {object}  handlers.RespIdentity
// @Router       /api/v1/auth/sign_up [post]
func ApiSignUp(svc *account.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		identity, err := svc.SignUp(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(identity))
	}
}

// @Summary      Sign in
// @Description  Verifies credentials and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body account.SignInRequest true "Sign-in request"
// @Success      200  {object}  handlers.RespSignIn
// @Router       /api/v1/auth/sign_in [post]
func ApiSignIn(svc *account.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.SignIn(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Current identity
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handlers.RespIdentity
// @Router       /api/v1/me [get]
func ApiMe(svc *account.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.SessionFrom(c)
		identity, err := svc.Get(c.Request.Context(), session.IdentityID)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(identity))
	}
}

// RegisterAuthRoutes mounts the public sign-up and sign-in endpoints behind limiter.
func RegisterAuthRoutes(r gin.IRouter, svc *account.Service, limiter *middleware.RateLimiter, log *zap.SugaredLogger) {
	r.POST("/sign_up", limiter.Middleware(), ApiSignUp(svc, log))
	r.POST("/sign_in", limiter.Middleware(), ApiSignIn(svc, log))
}
