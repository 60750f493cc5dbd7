package configs

type Spotify struct {
	ClientID     string `env:"SPOTIFY_CLIENT_ID,notEmpty"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET,notEmpty"`
	APIURL       string `env:"SPOTIFY_API_URL" envDefault:"https://api.spotify.com/v1"`
	TokenURL     string `env:"SPOTIFY_TOKEN_URL" envDefault:"https://accounts.spotify.com/api/token"`
}
