package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/upmkt/affiliates-api/docs"
	"github.com/upmkt/affiliates-api/internal/app/api/handlers"
	authsvc "github.com/upmkt/affiliates-api/internal/app/service/auth"
	"github.com/upmkt/affiliates-api/internal/app/service/commission"
	"github.com/upmkt/affiliates-api/internal/app/service/goal"
	"github.com/upmkt/affiliates-api/internal/app/service/payment"
	"github.com/upmkt/affiliates-api/internal/app/service/profile"
	"github.com/upmkt/affiliates-api/internal/app/service/stripeevent"
	"github.com/upmkt/affiliates-api/internal/app/service/ticket"
	"github.com/upmkt/affiliates-api/internal/app/service/withdrawal"
	"github.com/upmkt/affiliates-api/internal/platform/storage"
	cfgpkg "github.com/upmkt/affiliates-api/pkg/config"

	mw "github.com/upmkt/affiliates-api/internal/app/api/middleware"

	metrics "github.com/upmkt/affiliates-api/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log     *zap.SugaredLogger
	Cfg     *cfgpkg.Config
	Store   storage.Driver
	Auth    *authsvc.Service
	Profile *profile.Service
	Comm    *commission.Service
	Wdr     *withdrawal.Service
	Goal    *goal.Service
	Ticket  *ticket.Service
	Stripe  *stripeevent.Service
	Payment *payment.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Prometheus metrics
	if d.Cfg != nil && d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: d.Log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: health, auth, webhook, swagger
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	handlers.RegisterAuthRoutes(pub, d.Auth)
	handlers.RegisterStripeWebhookRoutes(pub, d.Stripe, d.Cfg, d.Log)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authenticated affiliate surface
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware(), mw.AuthMiddleware(d.Cfg))
	handlers.RegisterProfileRoutes(apiV1, d.Profile)
	handlers.RegisterCommissionRoutes(apiV1, d.Comm)
	handlers.RegisterWithdrawalRoutes(apiV1, d.Wdr)
	handlers.RegisterGoalRoutes(apiV1, d.Goal)
	handlers.RegisterTicketRoutes(apiV1, d.Ticket, d.Store)

	// Admin surface, role re-checked server side
	admin := apiV1.Group("/admin")
	admin.Use(mw.AdminMiddleware(d.Auth))
	handlers.RegisterAdminCommissionRoutes(admin, d.Comm)
	handlers.RegisterAdminWithdrawalRoutes(admin, d.Wdr, d.Store)
	handlers.RegisterAdminTicketRoutes(admin, d.Ticket)
	handlers.RegisterAdminStripeEventRoutes(admin, d.Stripe)
	handlers.RegisterAdminPaymentRoutes(admin, d.Payment)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
