package lifecycle

import (
	"context"
	"fmt"

	"song_rounds_system/internal/db/repositories"
	"song_rounds_system/internal/services"

	"go.uber.org/zap"
)

// Engine advances rounds through their lifecycle and drives the side effects
// of each transition. One tick is: commit the phase-transition pass, then run
// playlist creation for rounds that newly opened voting, then dispatch
// pending notifications. Side effects read only the committed delta, so a
// side-effect failure can never roll back a transition.
type Engine struct {
	lifecycleRepository repositories.LifecycleRepository
	roundRepository     repositories.RoundRepository
	userRepository      repositories.UserRepository
	playlistRepository  repositories.PlaylistRepository
	eventRepository     repositories.NotificationEventRepository
	authService         services.AuthService
	spotifyService      services.SpotifyService
	pushService         services.PushService
	clock               Clock
	logger              *zap.SugaredLogger
}

func NewEngine(
	lifecycleRepository repositories.LifecycleRepository,
	roundRepository repositories.RoundRepository,
	userRepository repositories.UserRepository,
	playlistRepository repositories.PlaylistRepository,
	eventRepository repositories.NotificationEventRepository,
	authService services.AuthService,
	spotifyService services.SpotifyService,
	pushService services.PushService,
	clock Clock,
	logger *zap.SugaredLogger,
) *Engine {
	return &Engine{
		lifecycleRepository: lifecycleRepository,
		roundRepository:     roundRepository,
		userRepository:      userRepository,
		playlistRepository:  playlistRepository,
		eventRepository:     eventRepository,
		authService:         authService,
		spotifyService:      spotifyService,
		pushService:         pushService,
		clock:               clock,
		logger:              logger,
	}
}

// Tick runs one full pass. A phase-transition failure aborts the tick and is
// retried on the next interval; playlist and notification failures are logged
// per item and never abort the tick.
func (e *Engine) Tick(ctx context.Context) error {
	now := e.clock.Now().UTC()

	delta, err := e.lifecycleRepository.AdvancePhases(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to advance phases: %w", err)
	}

	if delta.Empty() {
		e.logger.Debugw("no lifecycle changes", "now", now)
	} else {
		e.logger.Infow("phase pass committed",
			"now", now,
			"submissionsStarted", len(delta.SubmissionsStarted),
			"votingStarted", len(delta.VotingStarted),
			"completed", len(delta.Completed),
			"eventsRaised", delta.EventsRaised,
			"votesFinalized", delta.VotesFinalized,
		)
	}

	for _, round := range delta.VotingStarted {
		e.createRoundPlaylist(ctx, round.ID)
	}

	e.dispatchPendingNotifications(ctx, now)

	return nil
}
