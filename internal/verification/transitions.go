package verification

import (
	"errors"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

var (
	ErrInvalidTransition = errors.New("invalid verification status transition")
	ErrNotActionable     = errors.New("record not actionable")
)

// Verification actions. Approved/Rejected/Completed/Failed/Closed are
// terminal; re-review of a rejected record is a new upstream action, not a
// state restore, so no transition leads out of a terminal status.
const (
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionSchedule = "schedule" // inspection booking, sellers/hotels only
	ActionComplete = "complete"
	ActionFail     = "fail"
	ActionStart    = "start" // complaint taken up
	ActionResolve  = "resolve"
	ActionClose    = "close"
)

func nextStatus(spec records.KindSpec, from records.Status, action string) (records.Status, error) {
	switch spec.Kind {
	case records.KindComplaint:
		return nextComplaintStatus(from, action)
	default:
		return nextVerificationStatus(spec, from, action)
	}
}

func nextVerificationStatus(spec records.KindSpec, from records.Status, action string) (records.Status, error) {
	switch action {
	case ActionApprove:
		if from == records.StatusPending {
			return records.StatusApproved, nil
		}
	case ActionReject:
		if from == records.StatusPending {
			return records.StatusRejected, nil
		}
	case ActionSchedule:
		if spec.Inspectable && (from == records.StatusPending || from == records.StatusApproved) {
			return records.StatusScheduled, nil
		}
	case ActionComplete:
		if spec.Inspectable && from == records.StatusScheduled {
			return records.StatusCompleted, nil
		}
	case ActionFail:
		if spec.Inspectable && from == records.StatusScheduled {
			return records.StatusFailed, nil
		}
	}
	return "", ErrInvalidTransition
}

func nextComplaintStatus(from records.Status, action string) (records.Status, error) {
	switch action {
	case ActionStart:
		if from == records.StatusOpen {
			return records.StatusInProgress, nil
		}
	case ActionResolve:
		if from == records.StatusOpen || from == records.StatusInProgress {
			return records.StatusResolved, nil
		}
	case ActionClose:
		if from == records.StatusOpen || from == records.StatusInProgress || from == records.StatusResolved {
			return records.StatusClosed, nil
		}
	}
	return "", ErrInvalidTransition
}
