package input

import (
	"context"
	"time"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
)

type CreateEventInput struct {
	Title              string           `json:"title" validate:"required,max=200"`
	Description        string           `json:"description" validate:"max=2000"`
	Portfolio          domain.Portfolio `json:"portfolio" validate:"required,portfolio"`
	DateTime           *time.Time       `json:"dateTime"`
	Location           string           `json:"location" validate:"max=200"`
	Budget             float64          `json:"budget" validate:"gte=0"`
	MarketingRequested bool             `json:"marketingRequested"`
	ExternalsNeeded    bool             `json:"externalsNeeded"`
	ExternalsComment   string           `json:"externalsComment" validate:"max=2000"`
}

// EventPatch carries field edits. Nil fields are left unchanged; status and
// checklist have their own operations.
type EventPatch struct {
	Title              *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description        *string    `json:"description" validate:"omitempty,max=2000"`
	DateTime           *time.Time `json:"dateTime"`
	Location           *string    `json:"location" validate:"omitempty,max=200"`
	Budget             *float64   `json:"budget" validate:"omitempty,gte=0"`
	MarketingRequested *bool      `json:"marketingRequested"`
	ExternalsNeeded    *bool      `json:"externalsNeeded"`
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, actor *entities.User, in CreateEventInput) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	UpdateChecklistItem(ctx context.Context, eventID, itemID string, completed bool) (*entities.Event, error)
	AddChecklistItem(ctx context.Context, eventID, label string, required bool) (*entities.Event, error)
	CanMarkReady(ctx context.Context, eventID string) bool
	UpdateEventStatus(ctx context.Context, actor *entities.User, eventID string, status domain.EventStatus) (*entities.Event, error)
	UpdateExternalsComment(ctx context.Context, eventID, comment string) (*entities.Event, error)
	GetEventsByPortfolio(ctx context.Context, p domain.Portfolio) ([]entities.Event, error)
	GetMarketingRequests(ctx context.Context) ([]entities.Event, error)
	GetBudgetRequests(ctx context.Context) ([]entities.Event, error)
	GetExternalsRequests(ctx context.Context) ([]entities.Event, error)
	GetExternalsTasks(ctx context.Context) ([]entities.ExternalsTask, error)
	GetPendingApprovals(ctx context.Context) ([]entities.Event, error)
	GetApprovedEvents(ctx context.Context) ([]entities.Event, error)
}
