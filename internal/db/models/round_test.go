package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestDueForSubmission_StartDatePassed(t *testing.T) {
	round := &Round{Status: RoundStatusInactive, StartDate: testNow.Add(-time.Hour)}
	assert.True(t, round.DueForSubmission(testNow))
}

func TestDueForSubmission_StartDateExactlyNow(t *testing.T) {
	round := &Round{Status: RoundStatusInactive, StartDate: testNow}
	assert.True(t, round.DueForSubmission(testNow))
}

func TestDueForSubmission_StartDateInFuture(t *testing.T) {
	round := &Round{Status: RoundStatusInactive, StartDate: testNow.Add(time.Minute)}
	assert.False(t, round.DueForSubmission(testNow))
}

func TestDueForSubmission_WrongStatus(t *testing.T) {
	round := &Round{Status: RoundStatusVoting, StartDate: testNow.Add(-time.Hour)}
	assert.False(t, round.DueForSubmission(testNow))
}

func TestDueForVoting_VotingStartDatePassed(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, VotingStartDate: testNow.Add(-time.Second)}
	assert.True(t, round.DueForVoting(testNow))
}

func TestDueForVoting_NotYetDue(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, VotingStartDate: testNow.Add(30 * time.Minute)}
	assert.False(t, round.DueForVoting(testNow))
}

func TestDueForCompletion_EndDatePassed(t *testing.T) {
	round := &Round{Status: RoundStatusVoting, EndDate: testNow.Add(-time.Second)}
	assert.True(t, round.DueForCompletion(testNow))
}

func TestDueForCompletion_CompletedIsTerminal(t *testing.T) {
	round := &Round{Status: RoundStatusCompleted, EndDate: testNow.Add(-time.Hour)}
	assert.False(t, round.DueForCompletion(testNow))
}

func TestSubmissionEndingSoon_WithinWindow(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, VotingStartDate: testNow.Add(30 * time.Minute)}
	assert.True(t, round.SubmissionEndingSoon(testNow, time.Hour))
}

func TestSubmissionEndingSoon_ExactlyAtWindowEdge(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, VotingStartDate: testNow.Add(time.Hour)}
	assert.True(t, round.SubmissionEndingSoon(testNow, time.Hour))
}

func TestSubmissionEndingSoon_BeyondWindow(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, VotingStartDate: testNow.Add(time.Hour + time.Second)}
	assert.False(t, round.SubmissionEndingSoon(testNow, time.Hour))
}

func TestSubmissionEndingSoon_AlreadyDueIsNotEndingSoon(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, VotingStartDate: testNow}
	assert.False(t, round.SubmissionEndingSoon(testNow, time.Hour))
}

func TestVotingEndingSoon_WithinWindow(t *testing.T) {
	round := &Round{Status: RoundStatusVoting, EndDate: testNow.Add(45 * time.Minute)}
	assert.True(t, round.VotingEndingSoon(testNow, time.Hour))
}

func TestVotingEndingSoon_WrongStatus(t *testing.T) {
	round := &Round{Status: RoundStatusSubmission, EndDate: testNow.Add(45 * time.Minute)}
	assert.False(t, round.VotingEndingSoon(testNow, time.Hour))
}

func TestRoundStatus_CapitalizedString(t *testing.T) {
	assert.Equal(t, "Submission", RoundStatusSubmission.CapitalizedString())
	assert.Equal(t, "Voting", RoundStatusVoting.CapitalizedString())
}
