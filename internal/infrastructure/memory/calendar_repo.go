package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.CalendarRepository = (*CalendarRepository)(nil)

type CalendarRepository struct {
	s *store[entities.CalendarEvent]
}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{s: newStore(func(v *entities.CalendarEvent) string { return v.ID }, nil, domain.ErrCalendarEntryNotFound)}
}

func (r *CalendarRepository) Create(ctx context.Context, entry *entities.CalendarEvent) error {
	return r.s.create(ctx, entry)
}

func (r *CalendarRepository) FindByID(ctx context.Context, id string) (*entities.CalendarEvent, error) {
	return r.s.get(ctx, id)
}

func (r *CalendarRepository) FindAll(ctx context.Context) ([]entities.CalendarEvent, error) {
	return r.s.all(ctx)
}

func (r *CalendarRepository) Modify(ctx context.Context, id string, fn func(*entities.CalendarEvent) error) (*entities.CalendarEvent, error) {
	return r.s.modify(ctx, id, fn)
}

func (r *CalendarRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
