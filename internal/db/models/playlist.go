package models

import "time"

const PlaylistTypeRoundAll = "round-all"

// Playlist mirrors a playlist created on Spotify for a round's submissions.
type Playlist struct {
	ID                int            `json:"id" pg:",pk"`
	RoundID           int            `json:"round_id" pg:",notnull"`
	GroupID           int            `json:"group_id" pg:",notnull"`
	CreatedByID       int            `json:"created_by_id" pg:",notnull"`
	Type              string         `json:"type" pg:",notnull"`
	SpotifyPlaylistID string         `json:"spotify_playlist_id" pg:",notnull"`
	SpotifyURL        string         `json:"spotify_url"`
	CreatedAt         time.Time      `json:"created_at" pg:"default:now()"`
	Items             []PlaylistItem `json:"items" pg:"rel:has-many"`
}

type PlaylistItem struct {
	ID             int    `json:"id" pg:",pk"`
	PlaylistID     int    `json:"playlist_id" pg:",notnull"`
	Position       int    `json:"position" pg:",notnull"`
	SpotifyTrackID string `json:"spotify_track_id" pg:",notnull"`
	TrackName      string `json:"track_name" pg:",notnull"`
	ArtistName     string `json:"artist_name" pg:",notnull"`
}
