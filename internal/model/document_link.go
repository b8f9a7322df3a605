package model

import (
	"time"

	"gorm.io/gorm"
)

// DocumentLink ties a document to a dispatch order. The link owns its own id
// (gorm.Model.ID); deletions are keyed by that id and never by either
// endpoint id.
//
// LinkType and the doc_* fields are denormalized copies taken at link time.
// They are a read cache: anything that needs authoritative values must
// re-fetch the document, and readers always recompute the link direction from
// the code instead of trusting LinkType.
type DocumentLink struct {
	gorm.Model
	DocumentID      uint `gorm:"not null;index"`
	DispatchOrderID uint `gorm:"not null;index"`
	LinkType        string
	DocCode         string
	Subject         string
	DocDate         *time.Time
}

func (DocumentLink) TableName() string {
	return "document_links"
}
