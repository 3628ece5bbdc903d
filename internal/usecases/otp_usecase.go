package usecases

import (
	"context"
	"errors"
	"time"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/domain/repositories"
	"fastqr.backend/pkg/crypto"
	"fastqr.backend/pkg/logger"
	"fastqr.backend/pkg/metrics"
	"fastqr.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultOTPTTL is used when no OTP lifetime is configured
const DefaultOTPTTL = 10 * time.Minute

var (
	generateOTP = crypto.GenerateOTP
	timeNow     = time.Now
)

// OTPMailer delivers one-time codes
type OTPMailer interface {
	SendVerificationOTP(ctx context.Context, to, name, otp string) error
	SendPasswordResetOTP(ctx context.Context, to, name, otp string) error
}

// OTPUsecase issues and checks one-time codes
type OTPUsecase struct {
	otpRepo repositories.OTPRepository
	mailer  OTPMailer
	ttl     time.Duration
}

// NewOTPUsecase creates a new OTP usecase
func NewOTPUsecase(otpRepo repositories.OTPRepository, mailer OTPMailer, ttl time.Duration) *OTPUsecase {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPUsecase{
		otpRepo: otpRepo,
		mailer:  mailer,
		ttl:     ttl,
	}
}

// Issue stores a fresh code for user, replacing any previous one, and emails it
func (u *OTPUsecase) Issue(ctx context.Context, user *entities.User, purpose entities.OTPPurpose) error {
	code, err := generateOTP()
	if err != nil {
		return domainerrors.InternalError(err)
	}

	otp := &entities.OTP{
		ID:        utils.GenerateUUIDv7(),
		UserID:    user.ID,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: timeNow().Add(u.ttl),
	}
	if err := u.otpRepo.Upsert(ctx, otp); err != nil {
		return domainerrors.InternalError(err)
	}
	metrics.OTPIssuedTotal.WithLabelValues(string(purpose)).Inc()

	name := user.FirstName
	switch purpose {
	case entities.OTPPurposePassword:
		err = u.mailer.SendPasswordResetOTP(ctx, user.Email, name, code)
	default:
		err = u.mailer.SendVerificationOTP(ctx, user.Email, name, code)
	}
	if err != nil {
		logger.Error(ctx, "OTP email failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return domainerrors.Internal("Email not sent", err)
	}
	return nil
}

// Check returns the live code issued to userID for purpose when it matches. It changes nothing.
func (u *OTPUsecase) Check(ctx context.Context, userID uuid.UUID, code string, purpose entities.OTPPurpose) (*entities.OTP, error) {
	otp, err := u.otpRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidOTP()
		}
		return nil, domainerrors.InternalError(err)
	}
	if otp.Purpose != purpose || !otp.Matches(code, timeNow()) {
		return nil, invalidOTP()
	}
	return otp, nil
}

// Consume redeems a checked code. Only one caller wins; the rest get Invalid OTP.
func (u *OTPUsecase) Consume(ctx context.Context, otp *entities.OTP) error {
	if err := u.otpRepo.Consume(ctx, otp, timeNow()); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidOTP) {
			return invalidOTP()
		}
		return err
	}
	return nil
}

func invalidOTP() *domainerrors.AppError {
	return domainerrors.NewAppError(domainerrors.KindBadRequest, "Invalid OTP", domainerrors.ErrInvalidOTP)
}
