package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"fastqr.backend/internal/domain/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type paymentIntentExpiryRepoStub struct {
	expired    []*entities.PaymentIntent
	getErr     error
	expireErr  error
	expireCall int
	lastIDs    []uuid.UUID
}

func (s *paymentIntentExpiryRepoStub) GetExpiredPending(_ context.Context, _ int) ([]*entities.PaymentIntent, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.expired, nil
}

func (s *paymentIntentExpiryRepoStub) ExpireIntents(_ context.Context, ids []uuid.UUID) error {
	s.expireCall++
	s.lastIDs = ids
	return s.expireErr
}

func newTestJob(repo paymentIntentExpiryRepo) *PaymentIntentExpiryJob {
	return NewPaymentIntentExpiryJob(repo, time.Millisecond)
}

func TestNewPaymentIntentExpiryJob_DefaultInterval(t *testing.T) {
	job := NewPaymentIntentExpiryJob(&paymentIntentExpiryRepoStub{}, 0)
	require.Equal(t, 30*time.Second, job.interval)
}

func TestProcessExpiredIntents_NoItems(t *testing.T) {
	repo := &paymentIntentExpiryRepoStub{expired: []*entities.PaymentIntent{}}
	newTestJob(repo).processExpiredIntents(context.Background())
	require.Equal(t, 0, repo.expireCall)
}

func TestProcessExpiredIntents_Success(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	repo := &paymentIntentExpiryRepoStub{expired: []*entities.PaymentIntent{{ID: id1}, {ID: id2}}}

	newTestJob(repo).processExpiredIntents(context.Background())
	require.Equal(t, 1, repo.expireCall)
	require.ElementsMatch(t, []uuid.UUID{id1, id2}, repo.lastIDs)
}

func TestProcessExpiredIntents_GetError(t *testing.T) {
	repo := &paymentIntentExpiryRepoStub{getErr: errors.New("db down")}
	newTestJob(repo).processExpiredIntents(context.Background())
	require.Equal(t, 0, repo.expireCall)
}

func TestProcessExpiredIntents_ExpireError(t *testing.T) {
	id := uuid.New()
	repo := &paymentIntentExpiryRepoStub{expired: []*entities.PaymentIntent{{ID: id}}, expireErr: errors.New("update failed")}

	newTestJob(repo).processExpiredIntents(context.Background())
	require.Equal(t, 1, repo.expireCall)
	require.Equal(t, []uuid.UUID{id}, repo.lastIDs)
}

func TestStartStop_StopsByContext(t *testing.T) {
	job := newTestJob(&paymentIntentExpiryRepoStub{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	job := newTestJob(&paymentIntentExpiryRepoStub{})

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
