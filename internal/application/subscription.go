package app

import (
	"context"

	"news-detector/internal/domain/entity"
	"news-detector/internal/domain/port"
)

type SubscriptionService struct {
	repo port.SubscriberRepository
}

func NewSubscriptionService(repo port.SubscriberRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

func (s *SubscriptionService) Get(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *SubscriptionService) SetState(ctx context.Context, userID, chatID int64, state entity.SubscriptionState) (*entity.Subscriber, error) {
	subscriber, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	subscriber.SetState(state)
	if err := s.repo.Save(ctx, subscriber); err != nil {
		return nil, err
	}

	return subscriber, nil
}

func (s *SubscriptionService) Subscribe(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	return s.SetState(ctx, userID, chatID, entity.StateActive)
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, chatID int64) (*entity.Subscriber, error) {
	return s.SetState(ctx, userID, chatID, entity.StateInactive)
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID, chatID int64) (bool, error) {
	subscriber, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return false, err
	}
	return subscriber.IsActive(), nil
}

// ActiveCount возвращает число чатов, получающих сводки.
func (s *SubscriptionService) ActiveCount(ctx context.Context) (int, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}
