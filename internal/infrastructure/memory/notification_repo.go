package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.NotificationRepository = (*NotificationRepository)(nil)

type NotificationRepository struct {
	s *store[entities.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{s: newStore(func(v *entities.Notification) string { return v.ID }, nil, domain.ErrNotificationNotFound)}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	return r.s.create(ctx, n)
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*entities.Notification, error) {
	return r.s.get(ctx, id)
}

func (r *NotificationRepository) FindAll(ctx context.Context) ([]entities.Notification, error) {
	return r.s.all(ctx)
}

func (r *NotificationRepository) Modify(ctx context.Context, id string, fn func(*entities.Notification) error) (*entities.Notification, error) {
	return r.s.modify(ctx, id, fn)
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
