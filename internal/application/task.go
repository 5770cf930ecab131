package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
	"ircportal/pkg/tz"
)

var _ input.TaskUseCase = (*TaskService)(nil)

// dueSoonDays is how far ahead GetTasksDueSoon looks, today included.
const dueSoonDays = 7

type TaskService struct {
	taskRepo output.TaskRepository
	notifier notifier
	loc      *time.Location
	now      Clock
}

// NewTaskService creates a TaskService. Due dates are compared as calendar
// dates in loc. notifications may be nil.
func NewTaskService(taskRepo output.TaskRepository, notifications *NotificationService, loc *time.Location) *TaskService {
	s := &TaskService{taskRepo: taskRepo, loc: loc, now: time.Now}
	if notifications != nil {
		s.notifier = notifications
	}
	return s
}

func (s *TaskService) CreateTask(ctx context.Context, actor *entities.User, in input.CreateTaskInput) (*entities.Task, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	now := s.now()
	task := &entities.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Portfolio:   in.Portfolio,
		CreatedBy:   actor.Name,
		AssignedTo:  in.AssignedTo,
		Status:      domain.TaskTodo,
		Priority:    priority,
		Category:    in.Category,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Comments:    []entities.TaskComment{},
		Attachments: []entities.TaskAttachment{},
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, domain.NotificationTaskAssigned, "notification.task_assigned", map[string]any{
			"By":        actor.Name,
			"Title":     task.Title,
			"Assignee":  task.AssignedTo,
			"Portfolio": string(task.Portfolio),
		}, task.ID)
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return s.taskRepo.FindAll(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, patch input.TaskPatch) (*entities.Task, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(t *entities.Task) error {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.AssignedTo != nil {
			t.AssignedTo = *patch.AssignedTo
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.DueDate != nil {
			d := *patch.DueDate
			t.DueDate = &d
		}
		return nil
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

// UpdateTaskStatus follows todo -> in-progress -> review -> done, with
// in-progress -> todo as the only step back. CompletedAt is set on entering
// done and cleared on any other status.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (*entities.Task, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status is invalid")
	}
	return s.mutate(ctx, id, func(t *entities.Task) error {
		if !t.Status.CanTransition(status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, t.Status, status)
		}
		t.Status = status
		if status == domain.TaskDone {
			completedAt := s.now()
			t.CompletedAt = &completedAt
		} else {
			t.CompletedAt = nil
		}
		return nil
	})
}

func (s *TaskService) GetTasksByPortfolio(ctx context.Context, p domain.Portfolio) ([]entities.Task, error) {
	return s.filter(ctx, func(t *entities.Task) bool { return t.Portfolio == p })
}

func (s *TaskService) GetTasksByAssignee(ctx context.Context, assignee string) ([]entities.Task, error) {
	return s.filter(ctx, func(t *entities.Task) bool { return t.AssignedTo == assignee })
}

// GetTasksByVP returns the tasks created by vp.
func (s *TaskService) GetTasksByVP(ctx context.Context, vp string) ([]entities.Task, error) {
	return s.filter(ctx, func(t *entities.Task) bool { return t.CreatedBy == vp })
}

// GetOverdueTasks returns open tasks whose due date is before today.
func (s *TaskService) GetOverdueTasks(ctx context.Context) ([]entities.Task, error) {
	today := tz.Date(s.now(), s.loc)
	return s.filter(ctx, func(t *entities.Task) bool {
		return t.DueDate != nil && !t.IsDone() && tz.Day(*t.DueDate) < today
	})
}

// GetTasksDueSoon returns open tasks due between today and a week from today.
func (s *TaskService) GetTasksDueSoon(ctx context.Context) ([]entities.Task, error) {
	now := s.now()
	today := tz.Date(now, s.loc)
	horizon := tz.AddDays(now, s.loc, dueSoonDays)
	return s.filter(ctx, func(t *entities.Task) bool {
		if t.DueDate == nil || t.IsDone() {
			return false
		}
		due := tz.Day(*t.DueDate)
		return due >= today && due <= horizon
	})
}

func (s *TaskService) AddComment(ctx context.Context, taskID string, in input.CommentInput) (*entities.Task, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.mutate(ctx, taskID, func(t *entities.Task) error {
		t.Comments = append(t.Comments, entities.TaskComment{
			ID:         uuid.NewString(),
			Author:     in.Author,
			AuthorRole: in.AuthorRole,
			Text:       in.Text,
			Timestamp:  s.now(),
		})
		return nil
	})
}

func (s *TaskService) AddAttachment(ctx context.Context, taskID string, in input.AttachmentInput) (*entities.Task, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.mutate(ctx, taskID, func(t *entities.Task) error {
		t.Attachments = append(t.Attachments, entities.TaskAttachment{
			ID:         uuid.NewString(),
			Name:       in.Name,
			Type:       in.Type,
			UploadedBy: in.UploadedBy,
			UploadedAt: s.now(),
			URL:        in.URL,
		})
		return nil
	})
}

func (s *TaskService) mutate(ctx context.Context, id string, fn func(*entities.Task) error) (*entities.Task, error) {
	return s.taskRepo.Modify(ctx, id, func(t *entities.Task) error {
		if err := fn(t); err != nil {
			return err
		}
		t.UpdatedAt = s.now()
		return nil
	})
}

func (s *TaskService) filter(ctx context.Context, keep func(*entities.Task) bool) ([]entities.Task, error) {
	all, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]entities.Task, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}
