package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"news-detector/internal/domain/entity"
	"news-detector/internal/infrastructure/storage"
)

func TestSubscriptionService_SubscribeAndUnsubscribe(t *testing.T) {
	repo := storage.NewMemorySubscriberRepository()
	svc := NewSubscriptionService(repo)
	ctx := context.Background()

	s, err := svc.Subscribe(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateActive, s.State)

	ok, err := svc.IsSubscribed(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, ok)

	s, err = svc.Unsubscribe(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateInactive, s.State)

	ok, err = svc.IsSubscribed(ctx, 1, 10)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSubscriptionService_ActiveCount(t *testing.T) {
	repo := storage.NewMemorySubscriberRepository()
	svc := NewSubscriptionService(repo)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, 1, 10)
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, 2, 20)
	require.NoError(t, err)
	_, err = svc.Unsubscribe(ctx, 2, 20)
	require.NoError(t, err)

	n, err := svc.ActiveCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

type failingRepo struct {
	*storage.MemorySubscriberRepository
}

func (failingRepo) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	return errors.New("disk full")
}

func TestSubscriptionService_SaveError(t *testing.T) {
	svc := NewSubscriptionService(failingRepo{storage.NewMemorySubscriberRepository()})

	_, err := svc.Subscribe(context.Background(), 1, 10)
	require.EqualError(t, err, "disk full")
}
