package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"song_rounds_system/internal/db/models"
)

// createRoundPlaylist isolates one round's playlist side effect: any failure
// is logged and does not affect other rounds or the tick. The round has
// already transitioned to voting, so a failure here is not retried.
func (e *Engine) createRoundPlaylist(ctx context.Context, roundID int) {
	if err := e.buildRoundPlaylist(ctx, roundID); err != nil {
		e.logger.Errorw("failed to create round playlist", "roundID", roundID, "error", err)
	}
}

func (e *Engine) buildRoundPlaylist(ctx context.Context, roundID int) error {
	round, err := e.roundRepository.GetOne(roundID)
	if err != nil {
		return fmt.Errorf("failed to get round: %w", err)
	}
	if round.Group == nil {
		return errors.New("round has no group")
	}

	account, err := e.authService.GetAccountWithValidToken(ctx, round.Group.AdminID)
	if err != nil {
		return fmt.Errorf("failed to get admin account: %w", err)
	}
	if account == nil {
		e.logger.Infow("group admin has no linked spotify account, skipping playlist",
			"roundID", round.ID,
			"groupID", round.GroupID,
		)
		return nil
	}

	name := fmt.Sprintf("%s · %s", round.Group.Name, round.Theme)
	description := fmt.Sprintf("All submissions for %q", round.Theme)

	remote, err := e.spotifyService.CreatePlaylist(ctx, account.AccessToken, account.SpotifyUserID, name, description, false)
	if err != nil {
		return fmt.Errorf("failed to create spotify playlist: %w", err)
	}

	if len(round.Submissions) > 0 {
		trackURIs := make([]string, 0, len(round.Submissions))
		for i := range round.Submissions {
			trackURIs = append(trackURIs, round.Submissions[i].TrackURI())
		}

		if err := e.spotifyService.AddTracks(ctx, account.AccessToken, remote.ID, trackURIs); err != nil {
			return fmt.Errorf("failed to add tracks: %w", err)
		}
	}

	items := make([]models.PlaylistItem, 0, len(round.Submissions))
	for i, submission := range round.Submissions {
		items = append(items, models.PlaylistItem{
			Position:       i + 1,
			SpotifyTrackID: submission.SpotifyTrackID,
			TrackName:      submission.TrackName,
			ArtistName:     submission.ArtistName,
		})
	}

	playlist := &models.Playlist{
		RoundID:           round.ID,
		GroupID:           round.GroupID,
		CreatedByID:       round.Group.AdminID,
		Type:              models.PlaylistTypeRoundAll,
		SpotifyPlaylistID: remote.ID,
		SpotifyURL:        remote.URL,
		Items:             items,
	}

	if _, err := e.playlistRepository.Create(ctx, playlist); err != nil {
		return fmt.Errorf("failed to persist playlist: %w", err)
	}

	e.logger.Infow("round playlist created",
		"roundID", round.ID,
		"spotifyPlaylistID", remote.ID,
		"tracks", len(items),
	)

	return nil
}
