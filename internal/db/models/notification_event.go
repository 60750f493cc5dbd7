package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type NotificationType string

const (
	NotificationTypeSubmissionEndingSoon NotificationType = "submission_ending_soon"
	NotificationTypeVotingStarted        NotificationType = "voting_started"
	NotificationTypeVotingEndingSoon     NotificationType = "voting_ending_soon"
	NotificationTypeVotingEnded          NotificationType = "voting_ended"
)

// NotificationTypes lists every type in dispatch order.
var NotificationTypes = []NotificationType{
	NotificationTypeSubmissionEndingSoon,
	NotificationTypeVotingStarted,
	NotificationTypeVotingEndingSoon,
	NotificationTypeVotingEnded,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) CapitalizedString() string {
	return cases.Title(language.English).String(strings.ReplaceAll(t.String(), "_", " "))
}

// NotificationEvent records that a notification of a given type was raised for
// a round. At most one row ever exists per (round, type); SentAt flips from
// null to non-null exactly once, right after a delivery attempt.
type NotificationEvent struct {
	ID        int              `json:"id" pg:",pk"`
	RoundID   int              `json:"round_id" pg:",notnull"`
	Round     *Round           `json:"round" pg:"rel:has-one"`
	Type      NotificationType `json:"type" pg:",notnull"`
	SentAt    *time.Time       `json:"sent_at"`
	CreatedAt time.Time        `json:"created_at" pg:"default:now()"`
}
