package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/payment"
	"github.com/upmkt/affiliates-api/pkg/response"
)

// @Summary      List Payments (Admin)
// @Description  Paginated payment listing joined with payer and plan. Search matches payer name, email or coupon code.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body payment.ScanRequest true "Filters, search, pagination and sorting"
// @Success      200  {object}  response.APIResponse[payment.ScanResponse]
// @Router       /api/v1/admin/payments/list [post]
func ApiAdminListPayments(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ScanRequest
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

func RegisterAdminPaymentRoutes(r gin.IRouter, svc *payment.Service) {
	r.POST("/payments/list", ApiAdminListPayments(svc))
}
