package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.SocialEventRepository = (*SocialEventRepository)(nil)

type SocialEventRepository struct {
	s *store[entities.SocialEvent]
}

func NewSocialEventRepository() *SocialEventRepository {
	return &SocialEventRepository{s: newStore(func(v *entities.SocialEvent) string { return v.ID }, nil, domain.ErrSocialEventNotFound)}
}

func (r *SocialEventRepository) Create(ctx context.Context, social *entities.SocialEvent) error {
	return r.s.create(ctx, social)
}

func (r *SocialEventRepository) FindByID(ctx context.Context, id string) (*entities.SocialEvent, error) {
	return r.s.get(ctx, id)
}

func (r *SocialEventRepository) FindAll(ctx context.Context) ([]entities.SocialEvent, error) {
	return r.s.all(ctx)
}

func (r *SocialEventRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
