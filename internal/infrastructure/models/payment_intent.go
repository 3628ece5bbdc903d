package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentIntent struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreditWalletID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount         int64     `gorm:"not null"`
	Narration      string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(32);not null;index"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PaymentIntent) TableName() string { return "payment_intents" }

// All lists every model in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Wallet{},
		&OTP{},
		&PaymentIntent{},
		&Transaction{},
	}
}
