package container

import (
	app "news-detector/internal/application"
	"news-detector/internal/domain/port"
)

type Container struct {
	SubscriptionService *app.SubscriptionService
}

func New(subscriberRepo port.SubscriberRepository) *Container {
	return &Container{
		SubscriptionService: app.NewSubscriptionService(subscriberRepo),
	}
}
