package model

import (
	"time"

	"gorm.io/gorm"
)

// Document is an official correspondence record, incoming from an agency or
// outgoing from the company. Documents are created and edited by processes
// outside this service; the reconciliation engine only reads them.
type Document struct {
	gorm.Model
	Code              *string
	Subject           *string
	DocDate           *time.Time
	DirectionCategory *string // "incoming" or "outgoing" as recorded at intake
	Counterparties    string
}

func (Document) TableName() string {
	return "documents"
}

// CodeString returns the document code, or the empty string when none was
// recorded. The classifier treats both the same way.
func (d *Document) CodeString() string {
	if d.Code == nil {
		return ""
	}
	return *d.Code
}

// SubjectString returns the subject, or the empty string when none was recorded.
func (d *Document) SubjectString() string {
	if d.Subject == nil {
		return ""
	}
	return *d.Subject
}
