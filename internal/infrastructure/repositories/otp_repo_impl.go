package repositories

import (
	"context"
	"errors"
	"time"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OTPRepository implements OTP storage; one row per user
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Upsert stores otp, replacing any code the user already has along with its id
func (r *OTPRepository) Upsert(ctx context.Context, otp *entities.OTP) error {
	now := time.Now()
	m := &models.OTP{
		ID:        otp.ID,
		UserID:    otp.UserID,
		Code:      otp.Code,
		Purpose:   string(otp.Purpose),
		ExpiresAt: otp.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return GetDB(ctx, r.db).Omit("User").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"id", "code", "purpose", "expires_at", "updated_at"}),
	}).Create(m).Error
}

// GetByUserID returns the outstanding code of a user
func (r *OTPRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.OTP, error) {
	var m models.OTP
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.OTP{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		Purpose:   entities.OTPPurpose(m.Purpose),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// Consume deletes exactly the given live code; a second caller or a re-issued code leaves nothing to delete
func (r *OTPRepository) Consume(ctx context.Context, otp *entities.OTP, now time.Time) error {
	result := GetDB(ctx, r.db).
		Where("user_id = ? AND id = ? AND code = ? AND purpose = ? AND expires_at > ?",
			otp.UserID, otp.ID, otp.Code, string(otp.Purpose), now).
		Delete(&models.OTP{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidOTP
	}
	return nil
}
