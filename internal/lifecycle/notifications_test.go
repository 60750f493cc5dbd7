package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"song_rounds_system/internal/db/models"
	"song_rounds_system/internal/db/repositories"
	"song_rounds_system/internal/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDispatch_SendsUnsentEventAndMarksSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	engine, mocks := newTestEngine(ctrl, now)

	round := &models.Round{ID: 5, GroupID: 2, Theme: "Soundtracks", Status: models.RoundStatusVoting}
	event := &models.NotificationEvent{ID: 9, RoundID: 5, Round: round, Type: models.NotificationTypeVotingStarted}
	members := []*models.User{{ID: 1, PushToken: "tok-1"}, {ID: 2, PushToken: "tok-2"}}

	mocks.rounds.EXPECT().GetManyVotingEndingSoon(now, repositories.EndingSoonWindow).Return([]*models.Round{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeSubmissionEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingStarted).Return([]*models.NotificationEvent{event}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEnded).Return([]*models.NotificationEvent{}, nil)

	mocks.users.EXPECT().GetManyByGroup(2).Return(members, nil)

	var sent services.PushNotification
	mocks.push.EXPECT().
		SendToUsers(gomock.Any(), members, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []*models.User, notification services.PushNotification) error {
			sent = notification
			return nil
		})
	mocks.events.EXPECT().MarkSent(9, now).Return(nil)

	engine.dispatchPendingNotifications(context.Background(), now)

	assert.Equal(t, "Voting Started", sent.Title)
	assert.Contains(t, sent.Body, "Soundtracks")
	assert.Equal(t, "5", sent.Data["roundId"])
	assert.Equal(t, "voting_started", sent.Data["type"])
}

func TestDispatch_RaisesVotingEndingSoonEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	engine, mocks := newTestEngine(ctrl, now)

	rounds := []*models.Round{{ID: 5}, {ID: 6}}

	mocks.rounds.EXPECT().GetManyVotingEndingSoon(now, repositories.EndingSoonWindow).Return(rounds, nil)
	mocks.events.EXPECT().CreateIfAbsent(5, models.NotificationTypeVotingEndingSoon).Return(true, nil)
	mocks.events.EXPECT().CreateIfAbsent(6, models.NotificationTypeVotingEndingSoon).Return(false, nil)
	for _, notificationType := range models.NotificationTypes {
		mocks.events.EXPECT().GetManyUnsent(notificationType).Return([]*models.NotificationEvent{}, nil)
	}

	engine.dispatchPendingNotifications(context.Background(), now)
}

func TestDispatch_MarksSentEvenWhenSendFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	engine, mocks := newTestEngine(ctrl, now)

	round := &models.Round{ID: 5, GroupID: 2, Theme: "Soundtracks"}
	event := &models.NotificationEvent{ID: 9, RoundID: 5, Round: round, Type: models.NotificationTypeVotingEnded}

	mocks.rounds.EXPECT().GetManyVotingEndingSoon(gomock.Any(), gomock.Any()).Return([]*models.Round{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeSubmissionEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingStarted).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEnded).Return([]*models.NotificationEvent{event}, nil)

	mocks.users.EXPECT().GetManyByGroup(2).Return([]*models.User{{ID: 1, PushToken: "tok"}}, nil)
	mocks.push.EXPECT().SendToUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway unavailable"))
	mocks.events.EXPECT().MarkSent(9, now).Return(nil)

	engine.dispatchPendingNotifications(context.Background(), now)
}

func TestDispatch_MarksSentEvenWhenAudienceLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	engine, mocks := newTestEngine(ctrl, now)

	round := &models.Round{ID: 5, GroupID: 2, Theme: "Soundtracks"}
	event := &models.NotificationEvent{ID: 9, RoundID: 5, Round: round, Type: models.NotificationTypeVotingEnded}

	mocks.rounds.EXPECT().GetManyVotingEndingSoon(gomock.Any(), gomock.Any()).Return([]*models.Round{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeSubmissionEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingStarted).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEnded).Return([]*models.NotificationEvent{event}, nil)

	mocks.users.EXPECT().GetManyByGroup(2).Return(nil, errors.New("database error"))
	mocks.events.EXPECT().MarkSent(9, now).Return(nil)

	engine.dispatchPendingNotifications(context.Background(), now)
}

func TestDispatch_QueryFailureForOneTypeDoesNotBlockOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	engine, mocks := newTestEngine(ctrl, now)

	mocks.rounds.EXPECT().GetManyVotingEndingSoon(gomock.Any(), gomock.Any()).Return([]*models.Round{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeSubmissionEndingSoon).Return(nil, errors.New("database error"))
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingStarted).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEndingSoon).Return([]*models.NotificationEvent{}, nil)
	mocks.events.EXPECT().GetManyUnsent(models.NotificationTypeVotingEnded).Return([]*models.NotificationEvent{}, nil)

	engine.dispatchPendingNotifications(context.Background(), now)
}

func TestBuildNotification_SubmissionEndingSoon(t *testing.T) {
	round := &models.Round{
		ID:              5,
		GroupID:         2,
		Theme:           "Soundtracks",
		VotingStartDate: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
	}

	notification := buildNotification(models.NotificationTypeSubmissionEndingSoon, round)
	assert.Equal(t, "Submission Ending Soon", notification.Title)
	assert.Contains(t, notification.Body, `"Soundtracks"`)
	assert.Contains(t, notification.Body, "01.05.2024 18:00")
	assert.Equal(t, "2", notification.Data["groupId"])
}

func TestBuildNotification_VotingEndingSoon(t *testing.T) {
	round := &models.Round{
		ID:      5,
		GroupID: 2,
		Theme:   "Soundtracks",
		EndDate: time.Date(2024, 5, 3, 20, 30, 0, 0, time.UTC),
	}

	notification := buildNotification(models.NotificationTypeVotingEndingSoon, round)
	assert.Equal(t, "Voting Ending Soon", notification.Title)
	assert.Contains(t, notification.Body, "03.05.2024 20:30")
}

func TestBuildNotification_VotingEnded(t *testing.T) {
	round := &models.Round{ID: 5, GroupID: 2, Theme: "Soundtracks"}

	notification := buildNotification(models.NotificationTypeVotingEnded, round)
	assert.Equal(t, "Voting Ended", notification.Title)
	assert.Contains(t, notification.Body, "has ended")
}
