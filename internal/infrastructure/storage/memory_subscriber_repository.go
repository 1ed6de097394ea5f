package storage

import (
	"context"
	"sort"
	"sync"

	"news-detector/internal/domain/entity"
	"news-detector/internal/domain/port"
)

// MemorySubscriberRepository in-memory хранилище подписчиков
type MemorySubscriberRepository struct {
	mu          sync.RWMutex
	subscribers map[int64]entity.Subscriber
}

// NewMemorySubscriberRepository создаёт новое in-memory хранилище
func NewMemorySubscriberRepository() *MemorySubscriberRepository {
	return &MemorySubscriberRepository{
		subscribers: make(map[int64]entity.Subscriber),
	}
}

// Get возвращает копию подписчика по ID чата, создаёт нового если не найден
func (r *MemorySubscriberRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	r.mu.RLock()
	s, exists := r.subscribers[chatID]
	r.mu.RUnlock()

	if exists {
		return &s, nil
	}

	return entity.NewSubscriber(userID, chatID), nil
}

// Save сохраняет копию подписчика
func (r *MemorySubscriberRepository) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	r.mu.Lock()
	r.subscribers[subscriber.ChatID] = *subscriber
	r.mu.Unlock()

	return nil
}

// ListActive возвращает активных подписчиков, упорядоченных по ID чата
func (r *MemorySubscriberRepository) ListActive(ctx context.Context) ([]*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []*entity.Subscriber
	for _, s := range r.subscribers {
		if s.IsActive() {
			s := s
			active = append(active, &s)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ChatID < active[j].ChatID })

	return active, nil
}

// Проверка реализации интерфейса
var _ port.SubscriberRepository = (*MemorySubscriberRepository)(nil)
