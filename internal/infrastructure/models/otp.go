package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP keeps at most one outstanding code per user
type OTP struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Code      string    `gorm:"type:varchar(12);not null"`
	Purpose   string    `gorm:"type:varchar(32);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (OTP) TableName() string { return "otps" }
