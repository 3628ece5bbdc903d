package repositories

import (
	"context"

	"fastqr.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// WalletRepository defines wallet data operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	// Debit subtracts amount only when the balance covers it; returns ErrInsufficientFunds otherwise
	Debit(ctx context.Context, id uuid.UUID, amount int64) error
	Credit(ctx context.Context, id uuid.UUID, amount int64) error
}
