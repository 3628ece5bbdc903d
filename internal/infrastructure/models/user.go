package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FirstName    string      `gorm:"type:varchar(100);not null"`
	LastName     string      `gorm:"type:varchar(100);not null"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string      `gorm:"type:varchar(32);uniqueIndex;not null"`
	Country      string      `gorm:"type:varchar(100);not null"`
	CountryCode  string      `gorm:"type:varchar(8);not null"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	PinHash      null.String `gorm:"type:varchar(255)"`
	IsVerified   bool        `gorm:"not null;default:false"`
	Role         string      `gorm:"type:varchar(50);not null;default:'USER'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
