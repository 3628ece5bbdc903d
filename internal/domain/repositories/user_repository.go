package repositories

import (
	"context"
	"time"

	"fastqr.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// ExistsByEmailOrPhone reports whether either identifier is already taken
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdatePin(ctx context.Context, id uuid.UUID, pinHash string) error
}

// OTPRepository stores the single outstanding one-time code per user
type OTPRepository interface {
	Upsert(ctx context.Context, otp *entities.OTP) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.OTP, error)
	Consume(ctx context.Context, otp *entities.OTP, now time.Time) error
}
