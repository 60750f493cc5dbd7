package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
)

type RoundLifecycleServiceConfig struct {
	App       App
	DB        DB
	Logger    Logger
	Scheduler Scheduler
	Spotify   Spotify
	Push      Push
}

func LoadRoundLifecycleServiceConfig() (RoundLifecycleServiceConfig, error) {
	var config RoundLifecycleServiceConfig

	if err := env.Parse(&config); err != nil {
		return RoundLifecycleServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
