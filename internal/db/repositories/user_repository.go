package repositories

import (
	"song_rounds_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	GetOneByID(userID int) (*models.User, error)
	GetManyByGroup(groupID int) ([]*models.User, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) GetOneByID(userID int) (*models.User, error) {
	user := &models.User{}

	err := r.db.Model(user).
		Where("id = ?", userID).
		Select()

	return user, err
}

func (r *userRepository) GetManyByGroup(groupID int) ([]*models.User, error) {
	users := make([]*models.User, 0)

	err := r.db.Model(&users).
		Join(`JOIN group_members AS gm ON gm.user_id = "user".id`).
		Where("gm.group_id = ?", groupID).
		Select()

	return users, err
}
