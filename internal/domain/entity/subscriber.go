package entity

// SubscriptionState состояние подписки чата на сводки новостей
type SubscriptionState string

const (
	StateInactive SubscriptionState = "inactive" // Сводки не отправляются
	StateActive   SubscriptionState = "active"   // Чат получает сводки
)

// Subscriber чат, который может получать сводки новостей
type Subscriber struct {
	UserID int64             // Telegram User ID, оформивший подписку
	ChatID int64             // Telegram Chat ID
	State  SubscriptionState // Текущее состояние подписки
}

// NewSubscriber создаёт подписчика в неактивном состоянии
func NewSubscriber(userID, chatID int64) *Subscriber {
	return &Subscriber{
		UserID: userID,
		ChatID: chatID,
		State:  StateInactive,
	}
}

// SetState обновляет состояние подписки
func (s *Subscriber) SetState(state SubscriptionState) {
	s.State = state
}

// IsActive сообщает, получает ли чат сводки
func (s *Subscriber) IsActive() bool {
	return s.State == StateActive
}
