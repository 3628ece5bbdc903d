package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/domain/repositories"
	"fastqr.backend/pkg/crypto"
	"fastqr.backend/pkg/jwt"
	"fastqr.backend/pkg/logger"
	"fastqr.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenRevoker blocks session tokens before their natural expiry
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
	otp        *OTPUsecase
	jwtService *jwt.JWTService
	revoker    TokenRevoker
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	uow repositories.UnitOfWork,
	otp *OTPUsecase,
	jwtService *jwt.JWTService,
	revoker TokenRevoker,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		uow:        uow,
		otp:        otp,
		jwtService: jwtService,
		revoker:    revoker,
	}
}

// Register creates a user together with an empty wallet and emails a verification OTP
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.UserResponse, error) {
	normalizeRegisterInput(input)
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	exists, err := u.userRepo.ExistsByEmailOrPhone(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if exists {
		return nil, userExists()
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.PhoneNumber,
		Country:      input.Country,
		CountryCode:  input.CountryCode,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
	}
	wallet := &entities.Wallet{
		ID:     utils.GenerateUUIDv7(),
		UserID: user.ID,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.walletRepo.Create(txCtx, wallet)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, userExists()
		}
		return nil, domainerrors.Internal("User registration failed", err)
	}
	logger.Info(ctx, "User registered", zap.String("user_id", user.ID.String()))

	if err := u.otp.Issue(ctx, user, entities.OTPPurposeVerification); err != nil {
		return nil, err
	}

	return entities.NewUserResponse(user), nil
}

// Login checks credentials and issues a session token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, missingField("Email")
	}
	if input.Password == "" {
		return nil, missingField("Password")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials()
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		Token:     token,
		ExpiresAt: timeNow().Add(u.jwtService.Expiry()),
		User:      entities.NewUserResponse(user),
	}, nil
}

// Logout revokes token for the rest of its lifetime. Invalid or expired tokens are ignored.
func (u *AuthUsecase) Logout(ctx context.Context, token string) {
	if token == "" || u.revoker == nil {
		return
	}
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return
	}
	if err := u.revoker.Revoke(ctx, claims.ID, jwt.RemainingTTL(claims)); err != nil {
		logger.Warn(ctx, "Failed to revoke session token", zap.String("user_id", claims.UserID.String()), zap.Error(err))
	}
}

// VerifyAccount consumes a verification OTP and marks the user verified
func (u *AuthUsecase) VerifyAccount(ctx context.Context, input *entities.VerifyAccountInput) (*entities.UserResponse, error) {
	rawID := strings.TrimSpace(input.UserID)
	code := strings.TrimSpace(input.OTP.String())
	if rawID == "" {
		return nil, missingField("userId")
	}
	if code == "" {
		return nil, missingField("OTP")
	}

	userID, ok := utils.ParseUUID(rawID)
	if !ok {
		return nil, domainerrors.NotFound("User not found")
	}
	user, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	otp, err := u.otp.Check(ctx, user.ID, code, entities.OTPPurposeVerification)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.otp.Consume(txCtx, otp); err != nil {
			return err
		}
		return u.userRepo.MarkVerified(txCtx, user.ID)
	})
	if err != nil {
		var appErr *domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, domainerrors.Internal("Account verification failed", err)
	}

	user.IsVerified = true
	return entities.NewUserResponse(user), nil
}

// ResendVerification issues a new verification OTP to an unverified account
func (u *AuthUsecase) ResendVerification(ctx context.Context, input *entities.EmailInput) error {
	user, err := u.getUserByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return domainerrors.BadRequest("Account already verified")
	}
	return u.otp.Issue(ctx, user, entities.OTPPurposeVerification)
}

// ResetPassword emails a password reset OTP
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.EmailInput) error {
	user, err := u.getUserByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	return u.otp.Issue(ctx, user, entities.OTPPurposePassword)
}

// UpdatePassword completes a password reset with the emailed OTP
func (u *AuthUsecase) UpdatePassword(ctx context.Context, input *entities.UpdatePasswordInput) error {
	code := strings.TrimSpace(input.OTP.String())
	if strings.TrimSpace(input.Email) == "" {
		return missingField("Email")
	}
	if input.Password == "" {
		return missingField("Password")
	}
	if code == "" {
		return missingField("OTP")
	}
	if err := validatePassword(input.Password); err != nil {
		return err
	}

	user, err := u.getUserByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	otp, err := u.otp.Check(ctx, user.ID, code, entities.OTPPurposePassword)
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return domainerrors.InternalError(err)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.otp.Consume(txCtx, otp); err != nil {
			return err
		}
		return u.userRepo.UpdatePassword(txCtx, user.ID, passwordHash)
	})
	if err != nil {
		return domainerrors.Wrap(err)
	}
	logger.Info(ctx, "Password updated", zap.String("user_id", user.ID.String()))
	return nil
}

func (u *AuthUsecase) getUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

func (u *AuthUsecase) getUserByEmail(ctx context.Context, rawEmail string) (*entities.User, error) {
	email := normalizeEmail(rawEmail)
	if email == "" {
		return nil, missingField("Email")
	}
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

func userExists() *domainerrors.AppError {
	return domainerrors.NewAppError(domainerrors.KindBadRequest, "User already exists", domainerrors.ErrAlreadyExists)
}
