package lifecycle

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"song_rounds_system/internal"
	"song_rounds_system/internal/db/models"
	"song_rounds_system/internal/db/repositories"
	"song_rounds_system/internal/services"
)

// dispatchPendingNotifications delivers at most one attempt per unsent event
// and marks it sent regardless of delivery outcome. Events left unsent by an
// earlier crash are picked up here, so raising is at-least-once while sending
// is at-most-one-attempt.
func (e *Engine) dispatchPendingNotifications(ctx context.Context, now time.Time) {
	e.raiseVotingEndingSoonEvents(now)

	for _, notificationType := range models.NotificationTypes {
		events, err := e.eventRepository.GetManyUnsent(notificationType)
		if err != nil {
			e.logger.Errorw("failed to get unsent notification events", "type", notificationType, "error", err)
			continue
		}

		for _, event := range events {
			e.dispatchEvent(ctx, event)
		}
	}
}

// The voting-ending-soon predicate depends only on the end date, not on a
// status transition, so it is raised here instead of in the phase pass.
func (e *Engine) raiseVotingEndingSoonEvents(now time.Time) {
	rounds, err := e.roundRepository.GetManyVotingEndingSoon(now, repositories.EndingSoonWindow)
	if err != nil {
		e.logger.Errorw("failed to get rounds ending voting soon", "error", err)
		return
	}

	for _, round := range rounds {
		if _, err := e.eventRepository.CreateIfAbsent(round.ID, models.NotificationTypeVotingEndingSoon); err != nil {
			e.logger.Errorw("failed to raise voting ending soon event", "roundID", round.ID, "error", err)
		}
	}
}

func (e *Engine) dispatchEvent(ctx context.Context, event *models.NotificationEvent) {
	if event.Round == nil {
		e.logger.Errorw("notification event has no round", "eventID", event.ID, "roundID", event.RoundID)
	} else if members, err := e.userRepository.GetManyByGroup(event.Round.GroupID); err != nil {
		e.logger.Errorw("failed to resolve notification audience", "eventID", event.ID, "error", err)
	} else if err := e.pushService.SendToUsers(ctx, members, buildNotification(event.Type, event.Round)); err != nil {
		e.logger.Errorw("failed to send notification", "eventID", event.ID, "type", event.Type, "error", err)
	}

	// Sent is recorded even when the attempt failed. Delivery is
	// fire-and-forget; a failed push is not retried.
	if err := e.eventRepository.MarkSent(event.ID, e.clock.Now().UTC()); err != nil {
		e.logger.Errorw("failed to mark notification event sent", "eventID", event.ID, "error", err)
	}
}

func buildNotification(notificationType models.NotificationType, round *models.Round) services.PushNotification {
	var body string

	switch notificationType {
	case models.NotificationTypeSubmissionEndingSoon:
		body = fmt.Sprintf("Last call to submit a song for %q. Voting starts at %s.", round.Theme, internal.FormatWithTime(round.VotingStartDate))
	case models.NotificationTypeVotingStarted:
		body = fmt.Sprintf("Voting is open for %q. Listen to the playlist and cast your votes.", round.Theme)
	case models.NotificationTypeVotingEndingSoon:
		body = fmt.Sprintf("Voting for %q closes at %s.", round.Theme, internal.FormatWithTime(round.EndDate))
	case models.NotificationTypeVotingEnded:
		body = fmt.Sprintf("Voting for %q has ended. The results are in.", round.Theme)
	}

	return services.PushNotification{
		Title: notificationType.CapitalizedString(),
		Body:  body,
		Data: map[string]string{
			"roundId": strconv.Itoa(round.ID),
			"groupId": strconv.Itoa(round.GroupID),
			"type":    notificationType.String(),
		},
	}
}
