package usecases

import (
	"context"
	"errors"
	"strings"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/domain/repositories"
	"fastqr.backend/pkg/crypto"
	"fastqr.backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WalletUsecase handles wallet and transaction PIN logic
type WalletUsecase struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(userRepo repositories.UserRepository, walletRepo repositories.WalletRepository) *WalletUsecase {
	return &WalletUsecase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
	}
}

// CreatePin sets the first transaction PIN
func (u *WalletUsecase) CreatePin(ctx context.Context, userID uuid.UUID, input *entities.CreatePinInput) error {
	pin := strings.TrimSpace(input.Pin.String())
	if err := validatePin(pin); err != nil {
		return err
	}

	user, err := u.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.HasPin() {
		return domainerrors.BadRequest("Transaction pin already set")
	}

	return u.storePin(ctx, user.ID, pin)
}

// UpdatePin replaces the PIN after checking the current one
func (u *WalletUsecase) UpdatePin(ctx context.Context, userID uuid.UUID, input *entities.UpdatePinInput) error {
	pin := strings.TrimSpace(input.Pin.String())
	currentPin := strings.TrimSpace(input.CurrentPin.String())
	if err := validatePin(pin); err != nil {
		return err
	}
	if currentPin == "" {
		return missingField("Current Pin")
	}

	user, err := u.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasPin() {
		return domainerrors.BadRequest("Transaction pin not set")
	}
	if !crypto.CheckPassword(currentPin, user.PinHash.String) {
		return domainerrors.InvalidCredentials()
	}

	return u.storePin(ctx, user.ID, pin)
}

// GetWallet returns the wallet owned by userID
func (u *WalletUsecase) GetWallet(ctx context.Context, userID uuid.UUID) (*entities.WalletResponse, error) {
	user, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	wallet, err := u.walletRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Wallet not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return &entities.WalletResponse{
		WalletID: wallet.ID,
		Balance:  wallet.Balance,
		HasPin:   user.HasPin(),
	}, nil
}

func (u *WalletUsecase) storePin(ctx context.Context, userID uuid.UUID, pin string) error {
	pinHash, err := crypto.HashPassword(pin)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if err := u.userRepo.UpdatePin(ctx, userID, pinHash); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return domainerrors.InternalError(err)
	}
	logger.Info(ctx, "Transaction pin stored", zap.String("user_id", userID.String()))
	return nil
}

func (u *WalletUsecase) getUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}
