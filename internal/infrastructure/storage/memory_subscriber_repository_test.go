package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"news-detector/internal/domain/entity"
)

func TestMemorySubscriberRepository_GetUnknownReturnsInactive(t *testing.T) {
	repo := NewMemorySubscriberRepository()

	s, err := repo.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateInactive, s.State)
	require.Equal(t, int64(10), s.ChatID)
}

func TestMemorySubscriberRepository_SaveAndGet(t *testing.T) {
	repo := NewMemorySubscriberRepository()
	ctx := context.Background()

	s := entity.NewSubscriber(1, 10)
	s.SetState(entity.StateActive)
	require.NoError(t, repo.Save(ctx, s))

	// Изменения после Save не попадают в хранилище без повторного Save.
	s.SetState(entity.StateInactive)

	got, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, got.IsActive())
}

func TestMemorySubscriberRepository_ListActive(t *testing.T) {
	repo := NewMemorySubscriberRepository()
	ctx := context.Background()

	for _, chatID := range []int64{30, 10, 20} {
		s := entity.NewSubscriber(1, chatID)
		if chatID != 20 {
			s.SetState(entity.StateActive)
		}
		require.NoError(t, repo.Save(ctx, s))
	}

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, int64(10), active[0].ChatID)
	require.Equal(t, int64(30), active[1].ChatID)
}
