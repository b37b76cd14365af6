package app

import (
	"time"

	"github.com/upmkt/affiliates-api/internal/app/api/server"
	"github.com/upmkt/affiliates-api/internal/app/service/auth"
	"github.com/upmkt/affiliates-api/internal/app/service/commission"
	"github.com/upmkt/affiliates-api/internal/app/service/goal"
	"github.com/upmkt/affiliates-api/internal/app/service/payment"
	"github.com/upmkt/affiliates-api/internal/app/service/profile"
	"github.com/upmkt/affiliates-api/internal/app/service/stripeevent"
	"github.com/upmkt/affiliates-api/internal/app/service/ticket"
	"github.com/upmkt/affiliates-api/internal/app/service/withdrawal"
	"github.com/upmkt/affiliates-api/internal/platform/cache"
	"github.com/upmkt/affiliates-api/internal/platform/db"
	"github.com/upmkt/affiliates-api/internal/platform/storage"
	"github.com/upmkt/affiliates-api/pkg/config"
	"github.com/upmkt/affiliates-api/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	cache.Module,
	storage.Module,
	server.Module,
	auth.Module,
	profile.Module,
	commission.Module,
	withdrawal.Module,
	goal.Module,
	ticket.Module,
	stripeevent.Module,
	payment.Module,
)
