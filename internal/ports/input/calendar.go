package input

import (
	"context"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
)

type CalendarEntryInput struct {
	EventID     string                   `json:"eventId"`
	Title       string                   `json:"title" validate:"required,max=200"`
	Description string                   `json:"description" validate:"max=2000"`
	Date        string                   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string                   `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime     string                   `json:"endTime" validate:"omitempty,datetime=15:04"`
	Portfolio   domain.Portfolio         `json:"portfolio" validate:"required,portfolio"`
	Type        domain.CalendarEntryType `json:"type" validate:"required,entrytype"`
	Color       string                   `json:"color" validate:"max=20"`
	Visible     bool                     `json:"visible"`
}

type CalendarEntryPatch struct {
	EventID     *string                   `json:"eventId"`
	Title       *string                   `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string                   `json:"description" validate:"omitempty,max=2000"`
	Date        *string                   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string                   `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime     *string                   `json:"endTime" validate:"omitempty,datetime=15:04"`
	Type        *domain.CalendarEntryType `json:"type" validate:"omitempty,entrytype"`
	Color       *string                   `json:"color" validate:"omitempty,max=20"`
	Visible     *bool                     `json:"visible"`
}

type CalendarUseCase interface {
	AddEntry(ctx context.Context, actor *entities.User, in CalendarEntryInput) (*entities.CalendarEvent, error)
	UpdateEntry(ctx context.Context, actor *entities.User, id string, patch CalendarEntryPatch) (*entities.CalendarEvent, error)
	DeleteEntry(ctx context.Context, actor *entities.User, id string) error
	EntriesByPortfolio(ctx context.Context, p domain.Portfolio) ([]entities.CalendarEvent, error)
	EntriesByDate(ctx context.Context, date string) ([]entities.CalendarEvent, error)
	SharedEntries(ctx context.Context) ([]entities.CalendarEvent, error)
	PortfolioView(ctx context.Context, p domain.Portfolio, date string) ([]entities.CalendarEvent, error)
	SharedView(ctx context.Context, date string) ([]entities.CalendarEvent, error)
	DashboardView(ctx context.Context, date string) ([]entities.CalendarEvent, error)
}
