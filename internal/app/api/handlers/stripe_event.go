package handlers

import (
	"crypto/subtle"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/stripeevent"
	cfgpkg "github.com/upmkt/affiliates-api/pkg/config"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/response"
	"go.uber.org/zap"
)

// maxWebhookBody caps what we are willing to buffer from the event sender.
const maxWebhookBody = 1 << 20

// @Summary      Stripe Event Webhook
// @Description  Ingests a billing event. Idempotent on the event id; reconciliation failures are recorded on the stored event and still acknowledged.
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.StripeEvent]
// @Router       /webhooks/stripe [post]
func ApiStripeWebhook(svc *stripeevent.Service, cfg *cfgpkg.Config, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader("X-Webhook-Secret")
		if cfg.Stripe.WebhookSecret == "" ||
			subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.Stripe.WebhookSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, response.ErrorMsg(response.APIResponseCodeUnauthorized, "invalid webhook secret"))
			return
		}

		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil || len(payload) == 0 {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "empty payload"))
			return
		}

		ev, err := svc.Ingest(c.Request.Context(), payload)
		if err != nil {
			logctx.FromGin(c, log).Errorw("stripe webhook ingest failed", "error", err)
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(ev))
	}
}

// @Summary      List Stripe Events (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body stripeevent.ScanRequest true "Filters, pagination and sorting"
// @Success      200  {object}  response.APIResponse[stripeevent.ScanResponse]
// @Router       /api/v1/admin/stripe_events/list [post]
func ApiAdminListStripeEvents(svc *stripeevent.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req stripeevent.ScanRequest
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

// @Summary      Stripe Event Detail (Admin)
// @Description  The stored event with the profile and subscription it reconciled to, when resolvable.
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200  {object}  response.APIResponse[stripeevent.Detail]
// @Router       /api/v1/admin/stripe_events/{id} [get]
func ApiAdminGetStripeEvent(svc *stripeevent.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(detail))
	}
}

func RegisterStripeWebhookRoutes(r gin.IRouter, svc *stripeevent.Service, cfg *cfgpkg.Config, log *zap.SugaredLogger) {
	r.POST("/webhooks/stripe", ApiStripeWebhook(svc, cfg, log))
}

func RegisterAdminStripeEventRoutes(r gin.IRouter, svc *stripeevent.Service) {
	r.POST("/stripe_events/list", ApiAdminListStripeEvents(svc))
	r.GET("/stripe_events/:id", ApiAdminGetStripeEvent(svc))
}
