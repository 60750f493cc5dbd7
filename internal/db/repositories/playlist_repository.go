package repositories

import (
	"context"

	"song_rounds_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type playlistRepository struct {
	repository
}

type PlaylistRepository interface {
	Create(ctx context.Context, request *models.Playlist) (*models.Playlist, error)
}

func NewPlaylistRepository(db *pg.DB) PlaylistRepository {
	return &playlistRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *playlistRepository) Create(ctx context.Context, request *models.Playlist) (*models.Playlist, error) {
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		items := request.Items
		request.Items = nil

		if _, err := tx.Model(request).Insert(); err != nil {
			return err
		}

		for i := range items {
			items[i].PlaylistID = request.ID
		}

		if len(items) > 0 {
			if _, err := tx.Model(&items).Insert(); err != nil {
				return err
			}
		}

		request.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	playlist := &models.Playlist{}

	err = r.db.Model(playlist).
		Relation("Items", func(q *pg.Query) (*pg.Query, error) {
			return q.Order("position ASC"), nil
		}).
		Where("playlist.id = ?", request.ID).
		Select()

	return playlist, err
}
