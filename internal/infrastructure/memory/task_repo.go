package memory

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.TaskRepository = (*TaskRepository)(nil)

type TaskRepository struct {
	s *store[entities.Task]
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{s: newStore(func(v *entities.Task) string { return v.ID }, entities.Task.Clone, domain.ErrTaskNotFound)}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	return r.s.create(ctx, task)
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entities.Task, error) {
	return r.s.get(ctx, id)
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]entities.Task, error) {
	return r.s.all(ctx)
}

func (r *TaskRepository) Modify(ctx context.Context, id string, fn func(*entities.Task) error) (*entities.Task, error) {
	return r.s.modify(ctx, id, fn)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(ctx, id)
}
