package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.MeetingMinuteRepository = (*MeetingMinuteRepository)(nil)

type MeetingMinuteRepository struct {
	s *store[entities.MeetingMinute]
}

func NewMeetingMinuteRepository() *MeetingMinuteRepository {
	return &MeetingMinuteRepository{s: newStore(func(v *entities.MeetingMinute) string { return v.ID }, nil, domain.ErrMeetingMinuteNotFound)}
}

func (r *MeetingMinuteRepository) Create(ctx context.Context, minute *entities.MeetingMinute) error {
	return r.s.create(ctx, minute)
}

func (r *MeetingMinuteRepository) FindAll(ctx context.Context) ([]entities.MeetingMinute, error) {
	return r.s.all(ctx)
}

func (r *MeetingMinuteRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
