package models

import "time"

type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Status       string  `gorm:"size:20;default:'pending'" json:"status"`
	MonthlyPrice float64 `json:"monthly_price"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Comprovante de transferência enviado pelo cliente
	ProofURL      string `gorm:"size:255" json:"proof_url"`
	PaymentMethod string `gorm:"size:30" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
