package port

import (
	"context"

	"news-detector/internal/domain/entity"
)

// SubscriberRepository интерфейс хранилища подписчиков
type SubscriberRepository interface {
	// Get возвращает подписчика чата, либо нового неактивного если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error)

	// Save сохраняет подписчика
	Save(ctx context.Context, subscriber *entity.Subscriber) error

	// ListActive возвращает все активные подписки
	ListActive(ctx context.Context) ([]*entity.Subscriber, error)
}
