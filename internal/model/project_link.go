package model

import "gorm.io/gorm"

// ProjectLink ties a project to a dispatch order. Same shape as DocumentLink:
// an owned link id, the two endpoint ids, and display fields copied from the
// project at link time.
type ProjectLink struct {
	gorm.Model
	ProjectID       uint `gorm:"not null;index"`
	DispatchOrderID uint `gorm:"not null;index"`
	ProjectName     string
	District        string
}

func (ProjectLink) TableName() string {
	return "project_links"
}
