package di

import (
	"context"
	"song_rounds_system/configs"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(config configs.Logger) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if config.Debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}
