package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	s *store[entities.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{s: newStore(func(v *entities.Event) string { return v.ID }, entities.Event.Clone, domain.ErrEventNotFound)}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	return r.s.create(ctx, event)
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	return r.s.get(ctx, id)
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entities.Event, error) {
	return r.s.all(ctx)
}

func (r *EventRepository) Modify(ctx context.Context, id string, fn func(*entities.Event) error) (*entities.Event, error) {
	return r.s.modify(ctx, id, fn)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
