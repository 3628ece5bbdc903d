package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID   `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phoneNumber"`
	Country      string      `json:"country"`
	CountryCode  string      `json:"countryCode"`
	PasswordHash string      `json:"-"`
	PinHash      null.String `json:"-"`
	IsVerified   bool        `json:"isVerified"`
	Role         UserRole    `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// HasPin reports whether a transaction PIN has been set
func (u *User) HasPin() bool {
	return u.PinHash.Valid && u.PinHash.String != ""
}

// RegisterInput represents input for creating a user.
// Field checks run in a fixed order in the usecase, so no binding tags here.
type RegisterInput struct {
	Country     string `json:"country"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	CountryCode string `json:"countryCode"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyAccountInput carries an account verification attempt
type VerifyAccountInput struct {
	UserID string      `json:"userId"`
	OTP    NumericCode `json:"otp"`
}

// EmailInput carries a bare email (password reset, resend verification)
type EmailInput struct {
	Email string `json:"email"`
}

// UpdatePasswordInput carries a password reset completion
type UpdatePasswordInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	OTP      NumericCode `json:"otp"`
}

// UserResponse is the sanitized user projection returned to clients
type UserResponse struct {
	UserID      uuid.UUID `json:"userId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Country     string    `json:"country"`
	CountryCode string    `json:"countryCode"`
	IsVerified  bool      `json:"isVerified"`
}

// NewUserResponse projects a user without any secret material
func NewUserResponse(u *User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		UserID:      u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.Phone,
		Country:     u.Country,
		CountryCode: u.CountryCode,
		IsVerified:  u.IsVerified,
	}
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token     string        `json:"-"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}
