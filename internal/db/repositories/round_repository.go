package repositories

import (
	"time"

	"song_rounds_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type roundRepository struct {
	repository
}

type RoundRepository interface {
	GetOne(roundID int) (*models.Round, error)
	GetManyVotingEndingSoon(now time.Time, window time.Duration) ([]*models.Round, error)
}

func NewRoundRepository(db *pg.DB) RoundRepository {
	return &roundRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *roundRepository) GetOne(roundID int) (*models.Round, error) {
	round := &models.Round{}

	err := r.db.Model(round).
		Relation("Group").
		Relation("Group.Admin").
		Relation("Submissions", func(q *pg.Query) (*pg.Query, error) {
			return q.Order("created_at ASC"), nil
		}).
		Where("round.id = ?", roundID).
		Select()

	return round, err
}

func (r *roundRepository) GetManyVotingEndingSoon(now time.Time, window time.Duration) ([]*models.Round, error) {
	rounds := make([]*models.Round, 0)

	err := r.db.Model(&rounds).
		Where("status = ?", models.RoundStatusVoting).
		Where("end_date > ?", now).
		Where("end_date <= ?", now.Add(window)).
		Select()

	return rounds, err
}
