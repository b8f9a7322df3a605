package model

import (
	"time"

	"gorm.io/gorm"
)

// DispatchOrder is a unit of assigned survey work, identified by a dispatch
// code. Its linked documents and projects are owned relationship records, not
// direct foreign keys on the far entities.
type DispatchOrder struct {
	gorm.Model
	DispatchCode string `gorm:"index"`
	ProjectName  string
	// CategoryLabels holds the work category labels as one delimited string,
	// each label prefixed with its two-digit code ("01." .. "07.").
	CategoryLabels string
	Deadline       *time.Time
	Handler        string
	SurveyUnit     string

	LinkedDocuments []DocumentLink `gorm:"foreignKey:DispatchOrderID"`
	LinkedProjects  []ProjectLink  `gorm:"foreignKey:DispatchOrderID"`
}

func (DispatchOrder) TableName() string {
	return "dispatch_orders"
}
