package storage

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/upmkt/affiliates-api/pkg/config"
)

func NewDriver(l *zap.SugaredLogger, cfg *cfgpkg.Config) (Driver, error) {
	switch cfg.Storage.Driver {
	case "local", "":
		l.Infow("storage driver: local", "path", cfg.Storage.UploadsPath)
		return NewLocalDriver(cfg.Storage.UploadsPath, cfg.Storage.PublicBase), nil
	case "s3":
		l.Infow("storage driver: s3", "bucket", cfg.Storage.AWSBucket)
		return NewS3Driver(cfg.Storage)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}

var Module = fx.Options(
	fx.Provide(NewDriver),
)
