package input

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
)

type NotificationInput struct {
	Type      domain.NotificationType `json:"type" validate:"required,notification"`
	Title     string                  `json:"title" validate:"required,max=200"`
	Message   string                  `json:"message" validate:"required,max=2000"`
	RelatedTo string                  `json:"relatedTo"`
}

type NotificationUseCase interface {
	AddNotification(ctx context.Context, in NotificationInput) (*entities.Notification, error)
	ListNotifications(ctx context.Context) ([]entities.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	ClearNotification(ctx context.Context, id string) error
}
