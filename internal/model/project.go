package model

import "gorm.io/gorm"

// Project is an engineering project that dispatch orders and documents can be
// linked against.
type Project struct {
	gorm.Model
	ProjectName string `gorm:"index"`
	District    string
	ReviewYear  int
	Description string
}

func (Project) TableName() string {
	return "projects"
}
