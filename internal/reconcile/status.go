package reconcile

import "github.com/emrgen/dispatch/internal/model"

// WorkStatus is the derived lifecycle status of a dispatch order.
type WorkStatus string

const (
	StatusPending    WorkStatus = "pending"
	StatusInProgress WorkStatus = "in_progress"
	StatusCompleted  WorkStatus = "completed"
	StatusOverdue    WorkStatus = "overdue"
)

// AggregateStatus folds a dispatch order's work events into one lifecycle
// status. First match wins: no events reads as pending, one overdue event
// dominates everything else, then any in-progress event, then all-completed.
//
// Everything else falls through to pending. In particular a lone on_hold
// event with the rest pending is pending, not in progress. That fall-through
// is intentional; do not "repair" it.
func AggregateStatus(events []*model.WorkEvent) WorkStatus {
	if len(events) == 0 {
		return StatusPending
	}

	inProgress := false
	completed := true
	for _, ev := range events {
		switch ev.Status {
		case model.WorkStatusOverdue:
			return StatusOverdue
		case model.WorkStatusInProgress:
			inProgress = true
			completed = false
		case model.WorkStatusCompleted:
		default:
			completed = false
		}
	}

	if inProgress {
		return StatusInProgress
	}
	if completed {
		return StatusCompleted
	}
	return StatusPending
}
