package output

import (
	"context"

	"ircportal/internal/domain/entities"
)

// Repositories return copies. Modify is the only way to change a stored
// record: it loads, applies fn and stores as one step, and stores nothing
// when fn returns an error.

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindAll(ctx context.Context) ([]entities.Event, error)
	Modify(ctx context.Context, id string, fn func(*entities.Event) error) (*entities.Event, error)
	Delete(ctx context.Context, id string) error
}

type SocialEventRepository interface {
	Create(ctx context.Context, social *entities.SocialEvent) error
	FindByID(ctx context.Context, id string) (*entities.SocialEvent, error)
	FindAll(ctx context.Context) ([]entities.SocialEvent, error)
	Delete(ctx context.Context, id string) error
}

type CalendarRepository interface {
	Create(ctx context.Context, entry *entities.CalendarEvent) error
	FindByID(ctx context.Context, id string) (*entities.CalendarEvent, error)
	FindAll(ctx context.Context) ([]entities.CalendarEvent, error)
	Modify(ctx context.Context, id string, fn func(*entities.CalendarEvent) error) (*entities.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	FindByID(ctx context.Context, id string) (*entities.Task, error)
	FindAll(ctx context.Context) ([]entities.Task, error)
	Modify(ctx context.Context, id string, fn func(*entities.Task) error) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
}

type FundraisingRepository interface {
	Create(ctx context.Context, entry *entities.FundraisingEntry) error
	FindByID(ctx context.Context, id string) (*entities.FundraisingEntry, error)
	FindAll(ctx context.Context) ([]entities.FundraisingEntry, error)
	Modify(ctx context.Context, id string, fn func(*entities.FundraisingEntry) error) (*entities.FundraisingEntry, error)
	Delete(ctx context.Context, id string) error
}

type ReimbursementRepository interface {
	Create(ctx context.Context, r *entities.Reimbursement) error
	FindByID(ctx context.Context, id string) (*entities.Reimbursement, error)
	FindAll(ctx context.Context) ([]entities.Reimbursement, error)
	Modify(ctx context.Context, id string, fn func(*entities.Reimbursement) error) (*entities.Reimbursement, error)
	Delete(ctx context.Context, id string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	FindByID(ctx context.Context, id string) (*entities.Notification, error)
	FindAll(ctx context.Context) ([]entities.Notification, error)
	Modify(ctx context.Context, id string, fn func(*entities.Notification) error) (*entities.Notification, error)
	Delete(ctx context.Context, id string) error
}

type MeetingMinuteRepository interface {
	Create(ctx context.Context, minute *entities.MeetingMinute) error
	FindAll(ctx context.Context) ([]entities.MeetingMinute, error)
	Delete(ctx context.Context, id string) error
}
