package models

import "time"

type User struct {
	ID              int       `json:"id" pg:",pk"`
	Name            string    `json:"name" pg:",notnull"`
	SpotifyNickname string    `json:"spotify_nickname"`
	PushToken       string    `json:"push_token"`
	CreatedAt       time.Time `json:"created_at" pg:"default:now()"`
}
