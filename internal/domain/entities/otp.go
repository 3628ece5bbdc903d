package entities

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// OTPPurpose tells which flow issued a code
type OTPPurpose string

const (
	OTPPurposeVerification OTPPurpose = "verification"
	OTPPurposePassword     OTPPurpose = "password"
)

// OTP is the single outstanding one-time code of a user
type OTP struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Code      string     `json:"-"`
	Purpose   OTPPurpose `json:"purpose"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Matches reports whether code equals the stored code and the OTP is still live at now
func (o *OTP) Matches(code string, now time.Time) bool {
	if o == nil || code == "" || o.Code == "" {
		return false
	}
	if !o.ExpiresAt.IsZero() && !now.Before(o.ExpiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(o.Code), []byte(code)) == 1
}
