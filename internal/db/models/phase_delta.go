package models

// PhaseDelta is the committed result of one phase-transition pass. Side
// effects read only this delta, never the store state that produced it.
type PhaseDelta struct {
	SubmissionsStarted []*Round
	VotingStarted      []*Round
	Completed          []*Round
	EventsRaised       int
	VotesFinalized     int
}

// Empty reports whether the pass changed nothing.
func (d *PhaseDelta) Empty() bool {
	return len(d.SubmissionsStarted) == 0 &&
		len(d.VotingStarted) == 0 &&
		len(d.Completed) == 0 &&
		d.EventsRaised == 0 &&
		d.VotesFinalized == 0
}
