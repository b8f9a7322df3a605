package model

import (
	"time"

	"gorm.io/gorm"
)

// PaymentItem is one of the seven payment date/amount pairs a dispatch order
// can carry, keyed by work category code ("01" .. "07"). A nil Amount means
// no payment was recorded for that category.
type PaymentItem struct {
	gorm.Model
	DispatchOrderID uint   `gorm:"not null;index"`
	Code            string `gorm:"size:2;not null"`
	PaidDate        *time.Time
	Amount          *int64
}

func (PaymentItem) TableName() string {
	return "payment_items"
}
