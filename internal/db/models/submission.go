package models

import "time"

type Submission struct {
	ID             int       `json:"id" pg:",pk"`
	RoundID        int       `json:"round_id" pg:",notnull"`
	UserID         int       `json:"user_id" pg:",notnull"`
	SpotifyTrackID string    `json:"spotify_track_id" pg:",notnull"`
	TrackName      string    `json:"track_name" pg:",notnull"`
	ArtistName     string    `json:"artist_name" pg:",notnull"`
	AlbumName      string    `json:"album_name"`
	CreatedAt      time.Time `json:"created_at" pg:"default:now()"`
}

// TrackURI returns the Spotify URI used when adding the track to a playlist.
func (s *Submission) TrackURI() string {
	return "spotify:track:" + s.SpotifyTrackID
}
