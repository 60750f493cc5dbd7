package models

import "time"

// Account holds the Spotify credentials obtained by the OAuth login flow.
// This service only reads accounts and writes back refreshed tokens.
type Account struct {
	ID            int       `json:"id" pg:",pk"`
	UserID        int       `json:"user_id" pg:",notnull,unique"`
	SpotifyUserID string    `json:"spotify_user_id" pg:",notnull"`
	AccessToken   string    `json:"access_token" pg:",notnull"`
	RefreshToken  string    `json:"refresh_token" pg:",notnull"`
	TokenExpiry   time.Time `json:"token_expiry" pg:",notnull"`
	CreatedAt     time.Time `json:"created_at" pg:"default:now()"`
}

// TokenValid reports whether the stored access token is still usable at the
// given moment, with a small safety margin before the recorded expiry.
func (a *Account) TokenValid(now time.Time) bool {
	return a.AccessToken != "" && now.Add(time.Minute).Before(a.TokenExpiry)
}
