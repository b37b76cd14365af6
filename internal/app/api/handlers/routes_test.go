package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := map[string]bool{}
	for _, rt := range r.Routes() {
		set[rt.Method+" "+rt.Path] = true
	}
	return set
}

func TestRegisterAffiliateRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterProfileRoutes(g, nil)
	RegisterCommissionRoutes(g, nil)
	RegisterWithdrawalRoutes(g, nil)
	RegisterGoalRoutes(g, nil)
	RegisterTicketRoutes(g, nil, nil)

	routes := routeSet(r)
	for _, want := range []string{
		"GET /api/v1/me",
		"PUT /api/v1/me",
		"POST /api/v1/me/avatar",
		"POST /api/v1/commissions/list",
		"GET /api/v1/commissions/totals",
		"POST /api/v1/commissions/daily",
		"POST /api/v1/commissions/monthly",
		"POST /api/v1/withdrawals/request",
		"GET /api/v1/withdrawals",
		"POST /api/v1/goals",
		"GET /api/v1/goals",
		"GET /api/v1/goals/history",
		"PUT /api/v1/goals/:id",
		"DELETE /api/v1/goals/:id",
		"POST /api/v1/tickets",
		"POST /api/v1/tickets/list",
		"GET /api/v1/tickets/:id/messages",
		"POST /api/v1/tickets/:id/reply",
		"POST /api/v1/tickets/:id/read",
		"POST /api/v1/tickets/:id/rate",
		"POST /api/v1/tickets/:id/attachments",
	} {
		require.True(t, routes[want], "missing route %s", want)
	}
}

func TestRegisterAdminRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1/admin")
	RegisterAdminCommissionRoutes(g, nil)
	RegisterAdminWithdrawalRoutes(g, nil, nil)
	RegisterAdminTicketRoutes(g, nil)
	RegisterAdminStripeEventRoutes(g, nil)
	RegisterAdminPaymentRoutes(g, nil)

	routes := routeSet(r)
	for _, want := range []string{
		"POST /api/v1/admin/commissions/list",
		"POST /api/v1/admin/withdrawals/list",
		"GET /api/v1/admin/withdrawals/stats",
		"GET /api/v1/admin/withdrawals/transitions",
		"POST /api/v1/admin/withdrawals/:id/approve",
		"POST /api/v1/admin/withdrawals/:id/reject",
		"POST /api/v1/admin/withdrawals/:id/pay",
		"POST /api/v1/admin/withdrawals/:id/revert_approval",
		"POST /api/v1/admin/withdrawals/:id/revert_payment",
		"POST /api/v1/admin/tickets/:id/status",
		"POST /api/v1/admin/stripe_events/list",
		"GET /api/v1/admin/stripe_events/:id",
		"POST /api/v1/admin/payments/list",
	} {
		require.True(t, routes[want], "missing route %s", want)
	}
}
