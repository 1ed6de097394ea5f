package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"news-detector/internal/domain/entity"
)

// Интеграционные тесты запускаются только при заданном TEST_DATABASE_URL.
func newTestPostgresRepository(t *testing.T) *PostgresSubscriberRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewPostgresSubscriberRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))

	_, err = pool.Exec(ctx, `TRUNCATE subscribers`)
	require.NoError(t, err)

	return repo
}

func TestNewPostgresPool_InvalidURL(t *testing.T) {
	_, err := NewPostgresPool(context.Background(), "postgres://localhost:notaport/news")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse database url")
}

func TestPostgresSubscriberRepository_RoundTrip(t *testing.T) {
	repo := newTestPostgresRepository(t)
	ctx := context.Background()

	s, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateInactive, s.State)

	s.SetState(entity.StateActive)
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, got.IsActive())

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, int64(10), active[0].ChatID)

	got.SetState(entity.StateInactive)
	require.NoError(t, repo.Save(ctx, got))

	active, err = repo.ListActive(ctx)
	require.NoError(t, err)
	require.Empty(t, active)
}
