package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/commission"
	"github.com/upmkt/affiliates-api/pkg/response"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// @Summary      List Own Commissions
// @Description  Paginated commission listing scoped to the authenticated affiliate.
// @Tags         Commissions
// @Accept       json
// @Produce      json
// @Param        request body commission.ScanRequest true "Filters, pagination and sorting"
// @Success      200  {object}  response.APIResponse[commission.ScanResponse]
// @Router       /api/v1/commissions/list [post]
func ApiMyCommissions(svc *commission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commission.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		req.ProfileID = currentUserID(c)
		res, err := svc.Scan(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

type CommissionTotals struct {
	AvailableCents int64 `json:"available_cents"`
	PendingCents   int64 `json:"pending_cents"`
	WithdrawnCents int64 `json:"withdrawn_cents"`
}

// @Summary      Commission Totals
// @Description  Per-status commission sums for the authenticated affiliate.
// @Tags         Commissions
// @Produce      json
// @Success      200  {object}  response.APIResponse[CommissionTotals]
// @Router       /api/v1/commissions/totals [get]
func ApiCommissionTotals(svc *commission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		profileID := currentUserID(c)

		totals := &CommissionTotals{}
		var err error
		if totals.AvailableCents, err = svc.Total(ctx, profileID, types.CommissionStatusAvailable); err != nil {
			fail(c, err)
			return
		}
		if totals.PendingCents, err = svc.Total(ctx, profileID, types.CommissionStatusPending); err != nil {
			fail(c, err)
			return
		}
		if totals.WithdrawnCents, err = svc.Total(ctx, profileID, types.CommissionStatusWithdrawn); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(totals))
	}
}

// @Summary      Daily Commission Rollup
// @Tags         Commissions
// @Accept       json
// @Produce      json
// @Param        request body commission.AggregateRequest true "Optional date window"
// @Success      200  {object}  response.APIResponse[[]commission.Bucket]
// @Router       /api/v1/commissions/daily [post]
func ApiCommissionDaily(svc *commission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commission.AggregateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		req.ProfileID = currentUserID(c)
		buckets, err := svc.Daily(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(buckets))
	}
}

// @Summary      Monthly Commission Rollup
// @Tags         Commissions
// @Accept       json
// @Produce      json
// @Param        request body commission.AggregateRequest true "Optional date window"
// @Success      200  {object}  response.APIResponse[[]commission.Bucket]
// @Router       /api/v1/commissions/monthly [post]
func ApiCommissionMonthly(svc *commission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commission.AggregateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		req.ProfileID = currentUserID(c)
		buckets, err := svc.Monthly(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(buckets))
	}
}

// @Summary      List All Commissions (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body commission.ScanRequest true "Filters, pagination and sorting"
// @Success      200  {object}  response.APIResponse[commission.ScanResponse]
// @Router       /api/v1/admin/commissions/list [post]
func ApiAdminListCommissions(svc *commission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commission.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.Scan(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterCommissionRoutes(r gin.IRouter, svc *commission.Service) {
	r.POST("/commissions/list", ApiMyCommissions(svc))
	r.GET("/commissions/totals", ApiCommissionTotals(svc))
	r.POST("/commissions/daily", ApiCommissionDaily(svc))
	r.POST("/commissions/monthly", ApiCommissionMonthly(svc))
}

func RegisterAdminCommissionRoutes(r gin.IRouter, svc *commission.Service) {
	r.POST("/commissions/list", ApiAdminListCommissions(svc))
}
