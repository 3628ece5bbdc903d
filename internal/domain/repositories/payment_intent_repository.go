package repositories

import (
	"context"

	"fastqr.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// PaymentIntentRepository defines payment intent operations
type PaymentIntentRepository interface {
	Create(ctx context.Context, intent *entities.PaymentIntent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentIntent, error)
	// Consume flips a live PENDING intent to COMPLETED; returns ErrIntentUnavailable when it is not live
	Consume(ctx context.Context, id uuid.UUID) error
	GetExpiredPending(ctx context.Context, limit int) ([]*entities.PaymentIntent, error)
	ExpireIntents(ctx context.Context, ids []uuid.UUID) error
}
