package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/app/service/membership"
	"github.com/fatflowers/membership/internal/app/service/report"
	"github.com/fatflowers/membership/pkg/response"
)

// @Summary      Get membership
// @Tags         Membership
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Membership ID"
// @Success      200  {object}  handlers.RespMembership
// @Router       /api/v1/membership/{id} [get]
func ApiGetMembership(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Get membership by number
// @Tags         Membership
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      string  true  "Membership number, e.g. MEM000042"
// @Success      200     {object}  handlers.RespMembership
// @Router       /api/v1/membership/number/{number} [get]
func ApiGetMembershipByNumber(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetByNumber(c.Request.Context(), c.Param("number"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      List memberships
// @Description  Paginated, filterable and sortable membership table. A status filter matches the derived status.
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.ScanRequest true "Filters, pagination and sorting"
// @Success      200  {object}  handlers.RespListMemberships
// @Router       /api/v1/membership/list [post]
func ApiListMemberships(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.Scan(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      List membership transactions
// @Description  Membership transaction history, newest first.
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.ScanLogsRequest true "Filters and pagination"
// @Success      200  {object}  handlers.RespListMembershipLogs
// @Router       /api/v1/membership/logs [post]
func ApiListMembershipLogs(svc *membership.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.ScanLogsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.ScanLogs(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Membership report
// @Description  Computes the requested report data items.
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body report.Request true "Report data items and filters"
// @Success      200  {object}  handlers.RespReport
// @Router       /api/v1/membership/report [post]
func ApiMembershipReport(svc *report.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req report.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.GetReport(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterMembershipRoutes(r gin.IRouter, svc *membership.Service, reports *report.Service, log *zap.SugaredLogger) {
	r.GET("/number/:number", ApiGetMembershipByNumber(svc, log))
	r.GET("/:id", ApiGetMembership(svc, log))
	r.POST("/list", ApiListMemberships(svc, log))
	r.POST("/logs", ApiListMembershipLogs(svc, log))
	r.POST("/report", ApiMembershipReport(reports, log))
}
