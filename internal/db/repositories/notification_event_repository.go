package repositories

import (
	"time"

	"song_rounds_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type notificationEventRepository struct {
	repository
}

type NotificationEventRepository interface {
	CreateIfAbsent(roundID int, notificationType models.NotificationType) (bool, error)
	GetManyUnsent(notificationType models.NotificationType) ([]*models.NotificationEvent, error)
	MarkSent(eventID int, sentAt time.Time) error
}

func NewNotificationEventRepository(db *pg.DB) NotificationEventRepository {
	return &notificationEventRepository{
		repository: repository{
			db: db,
		},
	}
}

// CreateIfAbsent inserts an event row unless one already exists for the
// (round, type) pair. The unique index makes the insert the race-safe check;
// there is deliberately no prior read.
func (r *notificationEventRepository) CreateIfAbsent(roundID int, notificationType models.NotificationType) (bool, error) {
	event := &models.NotificationEvent{
		RoundID: roundID,
		Type:    notificationType,
	}

	result, err := r.db.Model(event).
		OnConflict("(round_id, type) DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *notificationEventRepository) GetManyUnsent(notificationType models.NotificationType) ([]*models.NotificationEvent, error) {
	events := make([]*models.NotificationEvent, 0)

	err := r.db.Model(&events).
		Relation("Round").
		Where("type = ?", notificationType).
		Where("sent_at IS NULL").
		OrderExpr("notification_event.id ASC").
		Select()

	return events, err
}

func (r *notificationEventRepository) MarkSent(eventID int, sentAt time.Time) error {
	_, err := r.db.Model((*models.NotificationEvent)(nil)).
		Set("sent_at = ?", sentAt).
		Where("id = ?", eventID).
		Where("sent_at IS NULL").
		Update()

	return err
}
