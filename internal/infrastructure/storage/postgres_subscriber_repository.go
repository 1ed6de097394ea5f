package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-detector/internal/domain/entity"
	"news-detector/internal/domain/port"
)

const subscribersSchema = `
CREATE TABLE IF NOT EXISTS subscribers (
	chat_id    BIGINT PRIMARY KEY,
	user_id    BIGINT NOT NULL,
	state      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresSubscriberRepository хранилище подписчиков в PostgreSQL
type PostgresSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriberRepository создаёт хранилище поверх пула соединений
func NewPostgresSubscriberRepository(pool *pgxpool.Pool) *PostgresSubscriberRepository {
	return &PostgresSubscriberRepository{pool: pool}
}

// EnsureSchema создаёт таблицу подписчиков, если её ещё нет
func (r *PostgresSubscriberRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, subscribersSchema); err != nil {
		return fmt.Errorf("create subscribers table: %w", err)
	}
	return nil
}

// Get возвращает подписчика по ID чата, либо нового неактивного если записи нет
func (r *PostgresSubscriberRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	query := `SELECT user_id, chat_id, state FROM subscribers WHERE chat_id = $1`

	s := &entity.Subscriber{}
	err := r.pool.QueryRow(ctx, query, chatID).Scan(&s.UserID, &s.ChatID, &s.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewSubscriber(userID, chatID), nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

// Save сохраняет подписчика, перезаписывая запись чата
func (r *PostgresSubscriberRepository) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (chat_id, user_id, state)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id) DO UPDATE
		SET user_id = EXCLUDED.user_id, state = EXCLUDED.state, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, subscriber.ChatID, subscriber.UserID, string(subscriber.State)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// ListActive возвращает активных подписчиков, упорядоченных по ID чата
func (r *PostgresSubscriberRepository) ListActive(ctx context.Context) ([]*entity.Subscriber, error) {
	query := `SELECT user_id, chat_id, state FROM subscribers WHERE state = $1 ORDER BY chat_id`

	rows, err := r.pool.Query(ctx, query, string(entity.StateActive))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	active, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Subscriber, error) {
		s := &entity.Subscriber{}
		err := row.Scan(&s.UserID, &s.ChatID, &s.State)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return active, nil
}

// Проверка реализации интерфейса
var _ port.SubscriberRepository = (*PostgresSubscriberRepository)(nil)
