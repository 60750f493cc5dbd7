package repositories

import (
	"errors"

	"song_rounds_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type accountRepository struct {
	repository
}

type AccountRepository interface {
	GetOneByUser(userID int) (*models.Account, error)
	Update(request *models.Account) (*models.Account, error)
}

func NewAccountRepository(db *pg.DB) AccountRepository {
	return &accountRepository{
		repository: repository{
			db: db,
		},
	}
}

// GetOneByUser returns nil without error when the user has never linked a
// Spotify account.
func (r *accountRepository) GetOneByUser(userID int) (*models.Account, error) {
	account := &models.Account{}

	err := r.db.Model(account).
		Where("user_id = ?", userID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) Update(request *models.Account) (*models.Account, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	account := &models.Account{}

	err = r.db.Model(account).
		Where("id = ?", request.ID).
		Select()

	return account, err
}
