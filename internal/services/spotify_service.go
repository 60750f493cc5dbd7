package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"song_rounds_system/configs"
)

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type createPlaylistResponse struct {
	ID           string `json:"id"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type addTracksRequest struct {
	URIs []string `json:"uris"`
}

// SpotifyPlaylist identifies a playlist created on Spotify.
type SpotifyPlaylist struct {
	ID  string
	URL string
}

type spotifyService struct {
	client  *http.Client
	baseURL string
}

type SpotifyService interface {
	CreatePlaylist(ctx context.Context, accessToken, spotifyUserID, name, description string, public bool) (SpotifyPlaylist, error)
	AddTracks(ctx context.Context, accessToken, playlistID string, trackURIs []string) error
}

func NewSpotifyService(config configs.Spotify) SpotifyService {
	return &spotifyService{
		client:  &http.Client{},
		baseURL: config.APIURL,
	}
}

func (s *spotifyService) CreatePlaylist(ctx context.Context, accessToken, spotifyUserID, name, description string, public bool) (SpotifyPlaylist, error) {
	jsonData, err := json.Marshal(createPlaylistRequest{
		Name:        name,
		Description: description,
		Public:      public,
	})
	if err != nil {
		return SpotifyPlaylist{}, err
	}

	url := fmt.Sprintf("%s/users/%s/playlists", s.baseURL, spotifyUserID)
	responseBody, err := s.post(ctx, accessToken, url, jsonData)
	if err != nil {
		return SpotifyPlaylist{}, err
	}

	responseData := new(createPlaylistResponse)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return SpotifyPlaylist{}, err
	}

	return SpotifyPlaylist{
		ID:  responseData.ID,
		URL: responseData.ExternalURLs.Spotify,
	}, nil
}

func (s *spotifyService) AddTracks(ctx context.Context, accessToken, playlistID string, trackURIs []string) error {
	jsonData, err := json.Marshal(addTracksRequest{URIs: trackURIs})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/playlists/%s/tracks", s.baseURL, playlistID)
	_, err = s.post(ctx, accessToken, url, jsonData)
	return err
}

func (s *spotifyService) post(ctx context.Context, accessToken, url string, jsonData []byte) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	request.Header.Add("Content-Type", "application/json; charset=utf-8")
	request.Header.Add("Authorization", "Bearer "+accessToken)

	response, err := s.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("spotify api returned %d: %s", response.StatusCode, responseBody)
	}

	return responseBody, nil
}
