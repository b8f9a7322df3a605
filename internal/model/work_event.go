package model

import (
	"time"

	"gorm.io/gorm"
)

// Work event statuses as stored on the row. The aggregate lifecycle status of
// a dispatch order is derived from these, never stored.
const (
	WorkStatusPending    = "pending"
	WorkStatusInProgress = "in_progress"
	WorkStatusCompleted  = "completed"
	WorkStatusOverdue    = "overdue"
	WorkStatusOnHold     = "on_hold"
)

// WorkEvent is a timestamped record of progress against one dispatch order.
// DispatchOrderID never changes after creation.
//
// An event may reference at most one document, in one of two shapes: the
// legacy direct incoming/outgoing reference pair, or the unified DocumentID
// plus DocumentDirection pair. Resolution of the two shapes lives in one
// place, reconcile.EffectiveDocumentRef.
type WorkEvent struct {
	gorm.Model
	DispatchOrderID uint `gorm:"not null;index"`
	Category        *string
	MilestoneType   string
	Description     string
	RecordDate      *time.Time
	DeadlineDate    *time.Time
	Status          string `gorm:"default:pending"`

	// Legacy document references. New rows use DocumentID + DocumentDirection.
	IncomingDocumentID *uint
	OutgoingDocumentID *uint

	DocumentID        *uint
	DocumentDirection *string // "incoming" or "outgoing"

	SortOrder int
}

func (WorkEvent) TableName() string {
	return "work_events"
}
