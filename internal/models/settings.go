package models

import "time"

// Settings é um registro único: horário de funcionamento e preço da assinatura
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpeningTime     string `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime     string `gorm:"size:5;default:'19:00'" json:"closing_time"`
	SlotIntervalMin int    `gorm:"default:30" json:"slot_interval_min"`

	MonthlySubscriptionPrice float64 `gorm:"default:99.90" json:"monthly_subscription_price"`

	UpdatedAt time.Time `json:"updated_at"`
}
