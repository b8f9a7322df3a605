package model

import (
	"time"

	"gorm.io/gorm"
)

// DocumentProjectLink ties a document to a project directly, without going
// through a dispatch order. It also feeds the history matcher: past
// document<->project associations are where auto-match candidates come from.
type DocumentProjectLink struct {
	gorm.Model
	DocumentID uint `gorm:"not null;index"`
	ProjectID  uint `gorm:"not null;index"`
	DocCode    string
	Subject    string
	DocDate    *time.Time
}

func (DocumentProjectLink) TableName() string {
	return "document_project_links"
}
