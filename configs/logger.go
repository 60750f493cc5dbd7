package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"round_lifecycle_service"`
	URL     string `env:"LOGGER_LOKI_URL"`
	Debug   bool   `env:"LOGGER_DEBUG" envDefault:"false"`
}
