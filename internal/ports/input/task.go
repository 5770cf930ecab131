package input

import (
	"context"
	"time"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
)

type CreateTaskInput struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Portfolio   domain.Portfolio    `json:"portfolio" validate:"required,portfolio"`
	AssignedTo  string              `json:"assignedTo" validate:"required"`
	Priority    domain.TaskPriority `json:"priority" validate:"omitempty,priority"`
	Category    string              `json:"category" validate:"max=50"`
	DueDate     *time.Time          `json:"dueDate"`
}

type TaskPatch struct {
	Title       *string              `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	AssignedTo  *string              `json:"assignedTo" validate:"omitempty,min=1"`
	Priority    *domain.TaskPriority `json:"priority" validate:"omitempty,priority"`
	Category    *string              `json:"category" validate:"omitempty,max=50"`
	DueDate     *time.Time           `json:"dueDate"`
}

type CommentInput struct {
	Author     string `json:"author" validate:"required"`
	AuthorRole string `json:"authorRole"`
	Text       string `json:"text" validate:"required,max=2000"`
}

type AttachmentInput struct {
	Name       string `json:"name" validate:"required,max=255"`
	Type       string `json:"type"`
	UploadedBy string `json:"uploadedBy" validate:"required"`
	URL        string `json:"url" validate:"omitempty,url"`
}

type TaskUseCase interface {
	CreateTask(ctx context.Context, actor *entities.User, in CreateTaskInput) (*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (*entities.Task, error)
	GetTasksByPortfolio(ctx context.Context, p domain.Portfolio) ([]entities.Task, error)
	GetTasksByAssignee(ctx context.Context, assignee string) ([]entities.Task, error)
	GetTasksByVP(ctx context.Context, vp string) ([]entities.Task, error)
	GetOverdueTasks(ctx context.Context) ([]entities.Task, error)
	GetTasksDueSoon(ctx context.Context) ([]entities.Task, error)
	AddComment(ctx context.Context, taskID string, in CommentInput) (*entities.Task, error)
	AddAttachment(ctx context.Context, taskID string, in AttachmentInput) (*entities.Task, error)
}
