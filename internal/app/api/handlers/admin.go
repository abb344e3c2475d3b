package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/app/api/middleware"
	"github.com/fatflowers/membership/internal/app/service/membership"
	"github.com/fatflowers/membership/pkg/response"
)

func operatorID(c *gin.Context) string {
	if s := middleware.SessionFrom(c); s != nil {
		return s.IdentityID
	}
	return ""
}

// @Summary      Create Membership (Admin)
// @Description  Registers a new active membership starting today and assigns the next membership number.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.CreateRequest true "Member details and duration"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/admin/create_membership [post]
func ApiCreateMembership(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.OperatorID = operatorID(c)
		item, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Extend Membership (Admin)
// @Description  Extends an active membership from its end date, or renews an expired one from today.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.ExtendRequest true "Membership ID, duration and optional expected version"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/admin/extend_membership [post]
func ApiExtendMembership(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.ExtendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.OperatorID = operatorID(c)
		item, err := svc.Extend(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Cancel Membership (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.CancelRequest true "Membership ID, reason and optional expected version"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/admin/cancel_membership [post]
func ApiCancelMembership(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.CancelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.OperatorID = operatorID(c)
		item, err := svc.Cancel(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Update Membership Profile (Admin)
// @Description  Edits member contact fields. Omitted fields are left unchanged.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/admin/update_membership_profile [post]
func ApiUpdateMembershipProfile(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.OperatorID = operatorID(c)
		item, err := svc.UpdateProfile(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

func RegisterAdminRoutes(r gin.IRouter, svc *membership.Service, log *zap.SugaredLogger) {
	r.POST("/create_membership", ApiCreateMembership(svc, log))
	r.POST("/extend_membership", ApiExtendMembership(svc, log))
	r.POST("/cancel_membership", ApiCancelMembership(svc, log))
	r.POST("/update_membership_profile", ApiUpdateMembershipProfile(svc, log))
}
