package repositories

import (
	"context"

	"fastqr.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// TransactionRepository defines ledger operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	// ListByWallet returns transactions touching walletID on either side, newest first, plus the total count
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error)
}
