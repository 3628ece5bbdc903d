package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Amount         int64      `gorm:"not null"`
	Narration      string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	Channel        string     `gorm:"type:varchar(32);not null"`
	CreditWalletID *uuid.UUID `gorm:"type:uuid;index"`
	DebitWalletID  *uuid.UUID `gorm:"type:uuid;index"`
	IntentID       *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt      time.Time  `gorm:"index"`
	UpdatedAt      time.Time
}

func (Transaction) TableName() string { return "transactions" }
