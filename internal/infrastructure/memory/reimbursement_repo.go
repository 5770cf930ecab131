package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.ReimbursementRepository = (*ReimbursementRepository)(nil)

type ReimbursementRepository struct {
	s *store[entities.Reimbursement]
}

func NewReimbursementRepository() *ReimbursementRepository {
	return &ReimbursementRepository{s: newStore(func(v *entities.Reimbursement) string { return v.ID }, nil, domain.ErrReimbursementNotFound)}
}

func (r *ReimbursementRepository) Create(ctx context.Context, claim *entities.Reimbursement) error {
	return r.s.create(ctx, claim)
}

func (r *ReimbursementRepository) FindByID(ctx context.Context, id string) (*entities.Reimbursement, error) {
	return r.s.get(ctx, id)
}

func (r *ReimbursementRepository) FindAll(ctx context.Context) ([]entities.Reimbursement, error) {
	return r.s.all(ctx)
}

func (r *ReimbursementRepository) Modify(ctx context.Context, id string, fn func(*entities.Reimbursement) error) (*entities.Reimbursement, error) {
	return r.s.modify(ctx, id, fn)
}

func (r *ReimbursementRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
