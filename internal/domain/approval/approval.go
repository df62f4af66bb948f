// Package approval holds the review state machine shared by check-clock
// records and letters: records start in Waiting Approval and an administrator
// moves them exactly once to Approve or Reject.
package approval

import "errors"

type Status string

const (
	StatusWaiting  Status = "Waiting Approval"
	StatusApproved Status = "Approve"
	StatusRejected Status = "Reject"
)

var StatusValues = []string{
	string(StatusWaiting),
	string(StatusApproved),
	string(StatusRejected),
}

var (
	ErrNotPending      = errors.New("record has already been approved or rejected")
	ErrInvalidDecision = errors.New("decision must be Approve or Reject")
)

// IsTerminal reports whether s is a final review state.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsDecision reports whether s is a valid administrator decision.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transition applies an administrator decision to the current state. Only
// pending records may be decided; re-deciding a terminal record fails with
// ErrNotPending.
func Transition(current Status, decision Status) (Status, error) {
	if !decision.IsDecision() {
		return current, ErrInvalidDecision
	}
	if current.IsTerminal() {
		return current, ErrNotPending
	}
	return decision, nil
}
