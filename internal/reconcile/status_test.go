package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emrgen/dispatch/internal/model"
)

func eventsWithStatus(statuses ...string) []*model.WorkEvent {
	events := make([]*model.WorkEvent, 0, len(statuses))
	for _, s := range statuses {
		events = append(events, &model.WorkEvent{DispatchOrderID: 1, Status: s})
	}
	return events
}

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     WorkStatus
	}{
		{name: "no events", statuses: nil, want: StatusPending},
		{name: "single pending", statuses: []string{"pending"}, want: StatusPending},
		{name: "overdue dominates completed", statuses: []string{"completed", "completed", "overdue"}, want: StatusOverdue},
		{name: "overdue dominates in_progress", statuses: []string{"in_progress", "overdue"}, want: StatusOverdue},
		{name: "in_progress beats pending", statuses: []string{"pending", "in_progress"}, want: StatusInProgress},
		{name: "in_progress beats completed", statuses: []string{"completed", "in_progress"}, want: StatusInProgress},
		{name: "all completed", statuses: []string{"completed", "completed"}, want: StatusCompleted},
		{name: "single completed", statuses: []string{"completed"}, want: StatusCompleted},
		{name: "completed plus pending is pending", statuses: []string{"completed", "pending"}, want: StatusPending},
		// on_hold satisfies no branch and falls through; this is the designed
		// behavior, not a gap
		{name: "lone on_hold falls through to pending", statuses: []string{"on_hold", "pending"}, want: StatusPending},
		{name: "on_hold blocks all-completed", statuses: []string{"on_hold", "completed"}, want: StatusPending},
		{name: "unknown status falls through", statuses: []string{"mystery"}, want: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateStatus(eventsWithStatus(tt.statuses...)))
		})
	}
}
