package jobs

import (
	"context"
	"sync"
	"time"

	"fastqr.backend/internal/domain/entities"
	"fastqr.backend/pkg/logger"
	"fastqr.backend/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const expiryBatchSize = 100

type paymentIntentExpiryRepo interface {
	GetExpiredPending(ctx context.Context, limit int) ([]*entities.PaymentIntent, error)
	ExpireIntents(ctx context.Context, ids []uuid.UUID) error
}

// PaymentIntentExpiryJob sweeps PENDING intents past their expiry into EXPIRED
type PaymentIntentExpiryJob struct {
	repo     paymentIntentExpiryRepo
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewPaymentIntentExpiryJob(repo paymentIntentExpiryRepo, interval time.Duration) *PaymentIntentExpiryJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &PaymentIntentExpiryJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called
func (j *PaymentIntentExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting payment intent expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Payment intent expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Payment intent expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredIntents(ctx)
		}
	}
}

func (j *PaymentIntentExpiryJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *PaymentIntentExpiryJob) processExpiredIntents(ctx context.Context) {
	expired, err := j.repo.GetExpiredPending(ctx, expiryBatchSize)
	if err != nil {
		logger.Error(ctx, "Error fetching expired payment intents", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, intent := range expired {
		ids = append(ids, intent.ID)
	}

	if err := j.repo.ExpireIntents(ctx, ids); err != nil {
		logger.Error(ctx, "Error expiring payment intents", zap.Error(err), zap.Int("count", len(ids)))
		return
	}

	metrics.IntentsExpiredTotal.Add(float64(len(ids)))
	logger.Info(ctx, "Expired payment intents", zap.Int("count", len(ids)))
}
