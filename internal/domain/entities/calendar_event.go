package entities

import (
	"time"

	"ircportal/internal/domain"
)

// CalendarEvent is an entry on a portfolio calendar. EventID links it to the
// tracked Event it publishes; entries without one are matched by title.
type CalendarEvent struct {
	ID          string                   `json:"id"`
	EventID     string                   `json:"eventId,omitempty"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Date        string                   `json:"date"`
	StartTime   string                   `json:"startTime,omitempty"`
	EndTime     string                   `json:"endTime,omitempty"`
	Portfolio   domain.Portfolio         `json:"portfolio"`
	Type        domain.CalendarEntryType `json:"type"`
	Color       string                   `json:"color,omitempty"`
	Visible     bool                     `json:"visible"`
	CreatedBy   string                   `json:"createdBy"`
	CreatedAt   time.Time                `json:"createdAt"`
}
