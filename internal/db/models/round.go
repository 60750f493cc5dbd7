package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type RoundStatus string

const (
	RoundStatusInactive   RoundStatus = "inactive"
	RoundStatusSubmission RoundStatus = "submission"
	RoundStatusVoting     RoundStatus = "voting"
	RoundStatusCompleted  RoundStatus = "completed"
)

func (s RoundStatus) String() string {
	return string(s)
}

func (s RoundStatus) CapitalizedString() string {
	return cases.Title(language.English).String(strings.ReplaceAll(s.String(), "_", " "))
}

type Round struct {
	ID              int          `json:"id" pg:",pk"`
	GroupID         int          `json:"group_id" pg:",notnull"`
	Group           *Group       `json:"group" pg:"rel:has-one"`
	Theme           string       `json:"theme" pg:",notnull"`
	Description     string       `json:"description"`
	SortOrder       int          `json:"sort_order" pg:",notnull"`
	StartDate       time.Time    `json:"start_date" pg:",notnull"`
	VotingStartDate time.Time    `json:"voting_start_date" pg:",notnull"`
	EndDate         time.Time    `json:"end_date" pg:",notnull"`
	Status          RoundStatus  `json:"status" pg:",notnull,default:'inactive'"`
	CreatedAt       time.Time    `json:"created_at" pg:"default:now()"`
	Submissions     []Submission `json:"submissions" pg:"rel:has-many"`
}

// DueForSubmission reports whether an inactive round should open for submissions.
func (r *Round) DueForSubmission(now time.Time) bool {
	return r.Status == RoundStatusInactive && !r.StartDate.After(now)
}

// DueForVoting reports whether a submission round should open for voting.
func (r *Round) DueForVoting(now time.Time) bool {
	return r.Status == RoundStatusSubmission && !r.VotingStartDate.After(now)
}

// DueForCompletion reports whether a voting round has reached its end date.
func (r *Round) DueForCompletion(now time.Time) bool {
	return r.Status == RoundStatusVoting && !r.EndDate.After(now)
}

// SubmissionEndingSoon reports whether the submission window closes within the
// given window, exclusive of now and inclusive of now+window.
func (r *Round) SubmissionEndingSoon(now time.Time, window time.Duration) bool {
	return r.Status == RoundStatusSubmission &&
		r.VotingStartDate.After(now) &&
		!r.VotingStartDate.After(now.Add(window))
}

// VotingEndingSoon reports whether the voting window closes within the given
// window, exclusive of now and inclusive of now+window.
func (r *Round) VotingEndingSoon(now time.Time, window time.Duration) bool {
	return r.Status == RoundStatusVoting &&
		r.EndDate.After(now) &&
		!r.EndDate.After(now.Add(window))
}
