package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.FundraisingRepository = (*FundraisingRepository)(nil)

type FundraisingRepository struct {
	s *store[entities.FundraisingEntry]
}

func NewFundraisingRepository() *FundraisingRepository {
	return &FundraisingRepository{s: newStore(func(v *entities.FundraisingEntry) string { return v.ID }, nil, domain.ErrFundraisingEntryNotFound)}
}

func (r *FundraisingRepository) Create(ctx context.Context, entry *entities.FundraisingEntry) error {
	return r.s.create(ctx, entry)
}

func (r *FundraisingRepository) FindByID(ctx context.Context, id string) (*entities.FundraisingEntry, error) {
	return r.s.get(ctx, id)
}

func (r *FundraisingRepository) FindAll(ctx context.Context) ([]entities.FundraisingEntry, error) {
	return r.s.all(ctx)
}

func (r *FundraisingRepository) Modify(ctx context.Context, id string, fn func(*entities.FundraisingEntry) error) (*entities.FundraisingEntry, error) {
	return r.s.modify(ctx, id, fn)
}

func (r *FundraisingRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
