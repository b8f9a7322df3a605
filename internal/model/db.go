package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Document{},
		&DispatchOrder{},
		&Project{},
		&WorkEvent{},
		&DocumentLink{},
		&ProjectLink{},
		&DocumentProjectLink{},
		&PaymentItem{},
	)
}
