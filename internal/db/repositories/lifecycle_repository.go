package repositories

import (
	"context"
	"time"

	"song_rounds_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

// EndingSoonWindow is how far ahead of a deadline the "ending soon"
// notification events are raised.
const EndingSoonWindow = time.Hour

type lifecycleRepository struct {
	repository
}

type LifecycleRepository interface {
	AdvancePhases(ctx context.Context, now time.Time) (*models.PhaseDelta, error)
}

func NewLifecycleRepository(db *pg.DB) LifecycleRepository {
	return &lifecycleRepository{
		repository: repository{
			db: db,
		},
	}
}

// AdvancePhases runs one phase-transition pass as a single transaction:
// raise submission-ending-soon events, open due submission windows, open due
// voting windows (raising voting-started events), complete due rounds
// (raising voting-ended events), and finalize every unfinalized vote.
// Either all of it commits or none of it does; side effects consume only the
// returned delta after commit.
//
// The vote sweep is intentionally not scoped to rounds that completed this
// pass: every unfinalized vote in the store is finalized on every pass.
func (r *lifecycleRepository) AdvancePhases(ctx context.Context, now time.Time) (*models.PhaseDelta, error) {
	delta := &models.PhaseDelta{}

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		raised, err := raiseEndingSoonEvents(tx, now)
		if err != nil {
			return err
		}
		delta.EventsRaised += raised

		delta.SubmissionsStarted, err = advanceRounds(tx, models.RoundStatusInactive, models.RoundStatusSubmission, "start_date <= ?", now)
		if err != nil {
			return err
		}

		delta.VotingStarted, err = advanceRounds(tx, models.RoundStatusSubmission, models.RoundStatusVoting, "voting_start_date <= ?", now)
		if err != nil {
			return err
		}

		raised, err = raiseEvents(tx, delta.VotingStarted, models.NotificationTypeVotingStarted)
		if err != nil {
			return err
		}
		delta.EventsRaised += raised

		delta.Completed, err = advanceRounds(tx, models.RoundStatusVoting, models.RoundStatusCompleted, "end_date <= ?", now)
		if err != nil {
			return err
		}

		raised, err = raiseEvents(tx, delta.Completed, models.NotificationTypeVotingEnded)
		if err != nil {
			return err
		}
		delta.EventsRaised += raised

		result, err := tx.Model((*models.Vote)(nil)).
			Set("is_finalized = ?", true).
			Where("is_finalized = ?", false).
			Update()
		if err != nil {
			return err
		}
		delta.VotesFinalized = result.RowsAffected()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return delta, nil
}

func advanceRounds(tx *pg.Tx, from, to models.RoundStatus, dueCondition string, now time.Time) ([]*models.Round, error) {
	rounds := make([]*models.Round, 0)

	_, err := tx.Model(&rounds).
		Set("status = ?", to).
		Where("status = ?", from).
		Where(dueCondition, now).
		Returning("*").
		Update()

	return rounds, err
}

func raiseEndingSoonEvents(tx *pg.Tx, now time.Time) (int, error) {
	rounds := make([]*models.Round, 0)

	err := tx.Model(&rounds).
		Column("id").
		Where("status = ?", models.RoundStatusSubmission).
		Where("voting_start_date > ?", now).
		Where("voting_start_date <= ?", now.Add(EndingSoonWindow)).
		Select()
	if err != nil {
		return 0, err
	}

	return raiseEvents(tx, rounds, models.NotificationTypeSubmissionEndingSoon)
}

func raiseEvents(tx *pg.Tx, rounds []*models.Round, notificationType models.NotificationType) (int, error) {
	if len(rounds) == 0 {
		return 0, nil
	}

	events := make([]*models.NotificationEvent, 0, len(rounds))
	for _, round := range rounds {
		events = append(events, &models.NotificationEvent{
			RoundID: round.ID,
			Type:    notificationType,
		})
	}

	result, err := tx.Model(&events).
		OnConflict("(round_id, type) DO NOTHING").
		Insert()
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
