package repositories

import (
	"context"
	"testing"
	"time"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newIntent(expiresAt time.Time) *entities.PaymentIntent {
	return &entities.PaymentIntent{
		ID:             uuid.New(),
		CreditWalletID: uuid.New(),
		Amount:         500,
		Narration:      "lunch",
		Status:         entities.PaymentIntentStatusPending,
		ExpiresAt:      expiresAt,
	}
}

func TestPaymentIntentRepository_ConsumeOnce(t *testing.T) {
	db := newTestDB(t)
	createPaymentIntentTable(t, db)
	repo := NewPaymentIntentRepository(db)
	ctx := context.Background()

	intent := newIntent(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, intent))

	got, err := repo.GetByID(ctx, intent.ID)
	require.NoError(t, err)
	require.Equal(t, int64(500), got.Amount)
	require.Equal(t, entities.PaymentIntentStatusPending, got.Status)

	require.NoError(t, repo.Consume(ctx, intent.ID))
	require.ErrorIs(t, repo.Consume(ctx, intent.ID), domainerrors.ErrIntentUnavailable)

	got, err = repo.GetByID(ctx, intent.ID)
	require.NoError(t, err)
	require.Equal(t, entities.PaymentIntentStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPaymentIntentRepository_ExpiredCannotBeConsumed(t *testing.T) {
	db := newTestDB(t)
	createPaymentIntentTable(t, db)
	repo := NewPaymentIntentRepository(db)
	ctx := context.Background()

	expired := newIntent(time.Now().Add(-time.Hour))
	live := newIntent(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, live))

	require.ErrorIs(t, repo.Consume(ctx, expired.ID), domainerrors.ErrIntentUnavailable)

	pending, err := repo.GetExpiredPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, expired.ID, pending[0].ID)

	require.NoError(t, repo.ExpireIntents(ctx, []uuid.UUID{expired.ID}))
	require.NoError(t, repo.ExpireIntents(ctx, nil))

	got, err := repo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	require.Equal(t, entities.PaymentIntentStatusExpired, got.Status)

	pending, err = repo.GetExpiredPending(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}
