package repositories

import (
	"context"
	"errors"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepositoryImpl implements TransactionRepository
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:             tx.ID,
		Amount:         tx.Amount,
		Narration:      tx.Narration,
		Status:         string(tx.Status),
		Channel:        string(tx.Channel),
		CreditWalletID: tx.CreditWalletID,
		DebitWalletID:  tx.DebitWalletID,
		IntentID:       tx.IntentID,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TransactionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TransactionRepositoryImpl) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Transaction{}).
		Where("credit_wallet_id = ? OR debit_wallet_id = ?", walletID, walletID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Transaction
	if err := GetDB(ctx, r.db).
		Where("credit_wallet_id = ? OR debit_wallet_id = ?", walletID, walletID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, r.toEntity(&ms[i]))
	}
	return txs, int(total), nil
}

func (r *TransactionRepositoryImpl) toEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:             m.ID,
		Amount:         m.Amount,
		Narration:      m.Narration,
		Status:         entities.TransactionStatus(m.Status),
		Channel:        entities.TransactionChannel(m.Channel),
		CreditWalletID: m.CreditWalletID,
		DebitWalletID:  m.DebitWalletID,
		IntentID:       m.IntentID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
