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
)

// PaymentIntentRepositoryImpl implements PaymentIntentRepository
type PaymentIntentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentIntentRepository(db *gorm.DB) *PaymentIntentRepositoryImpl {
	return &PaymentIntentRepositoryImpl{db: db}
}

func (r *PaymentIntentRepositoryImpl) Create(ctx context.Context, intent *entities.PaymentIntent) error {
	m := &models.PaymentIntent{
		ID:             intent.ID,
		CreditWalletID: intent.CreditWalletID,
		Amount:         intent.Amount,
		Narration:      intent.Narration,
		Status:         string(intent.Status),
		ExpiresAt:      intent.ExpiresAt,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	intent.CreatedAt = m.CreatedAt
	intent.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PaymentIntentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentIntent, error) {
	var m models.PaymentIntent
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Consume is the single-use gate: only one caller can flip a live intent
func (r *PaymentIntentRepositoryImpl) Consume(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := GetDB(ctx, r.db).Model(&models.PaymentIntent{}).
		Where("id = ? AND status = ? AND expires_at > ?", id, entities.PaymentIntentStatusPending, now).
		Updates(map[string]interface{}{
			"status":       entities.PaymentIntentStatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIntentUnavailable
	}
	return nil
}

func (r *PaymentIntentRepositoryImpl) GetExpiredPending(ctx context.Context, limit int) ([]*entities.PaymentIntent, error) {
	var ms []models.PaymentIntent
	if err := GetDB(ctx, r.db).
		Where("status = ? AND expires_at < ?", entities.PaymentIntentStatusPending, time.Now()).
		Order("expires_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	intents := make([]*entities.PaymentIntent, 0, len(ms))
	for i := range ms {
		intents = append(intents, r.toEntity(&ms[i]))
	}
	return intents, nil
}

// ExpireIntents marks the given intents EXPIRED, skipping any that settled meanwhile
func (r *PaymentIntentRepositoryImpl) ExpireIntents(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Model(&models.PaymentIntent{}).
		Where("id IN ? AND status = ?", ids, entities.PaymentIntentStatusPending).
		Updates(map[string]interface{}{
			"status":     entities.PaymentIntentStatusExpired,
			"updated_at": time.Now(),
		}).Error
}

func (r *PaymentIntentRepositoryImpl) toEntity(m *models.PaymentIntent) *entities.PaymentIntent {
	return &entities.PaymentIntent{
		ID:             m.ID,
		CreditWalletID: m.CreditWalletID,
		Amount:         m.Amount,
		Narration:      m.Narration,
		Status:         entities.PaymentIntentStatus(m.Status),
		ExpiresAt:      m.ExpiresAt,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
