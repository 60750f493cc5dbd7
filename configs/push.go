package configs

type Push struct {
	GatewayURL  string `env:"PUSH_GATEWAY_URL,notEmpty"`
	AccessToken string `env:"PUSH_GATEWAY_ACCESS_TOKEN"`
}
