package entities

import (
	"time"

	"ircportal/internal/domain"
)

// CanMarkReady reports whether every required checklist item is completed.
func (e *Event) CanMarkReady() bool {
	for _, item := range e.Checklist {
		if item.Required && !item.Completed {
			return false
		}
	}
	return true
}

// NeedsExternals reports whether the event surfaces as an externals task.
func (e *Event) NeedsExternals() bool {
	return e.ExternalsNeeded && e.ExternalsComment != ""
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Required  bool   `json:"required"`
}

type Event struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	Portfolio          domain.Portfolio   `json:"portfolio"`
	CreatedBy          string             `json:"createdBy"`
	Status             domain.EventStatus `json:"status"`
	DateTime           *time.Time         `json:"dateTime,omitempty"`
	Location           string             `json:"location,omitempty"`
	Budget             float64            `json:"budget,omitempty"`
	MarketingRequested bool               `json:"marketingRequested"`
	ExternalsNeeded    bool               `json:"externalsNeeded"`
	ExternalsComment   string             `json:"externalsComment,omitempty"`
	Checklist          []ChecklistItem    `json:"checklist"`
	ApprovedBy         string             `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time         `json:"approvedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Clone returns a deep copy so callers never share the checklist slice.
func (e Event) Clone() Event {
	e.Checklist = append([]ChecklistItem(nil), e.Checklist...)
	if e.DateTime != nil {
		t := *e.DateTime
		e.DateTime = &t
	}
	if e.ApprovedAt != nil {
		t := *e.ApprovedAt
		e.ApprovedAt = &t
	}
	return e
}

// DefaultChecklist returns the template every new event starts with.
// Items 1 to 3 gate the ready status.
func DefaultChecklist() []ChecklistItem {
	return []ChecklistItem{
		{ID: "1", Label: "Date & location confirmed", Required: true},
		{ID: "2", Label: "Budget submitted to Finance", Required: true},
		{ID: "3", Label: "Marketing request submitted", Required: true},
		{ID: "4", Label: "Externals reaching out needed?"},
		{ID: "5", Label: "Volunteers plan ready"},
		{ID: "6", Label: "Supplies confirmed"},
		{ID: "7", Label: "Day-of plan ready"},
		{ID: "8", Label: "Post-event recap submitted"},
	}
}

// ExternalsTask is derived from an event that asks the externals portfolio for help.
type ExternalsTask struct {
	ID              string           `json:"id"`
	EventID         string           `json:"eventId"`
	EventTitle      string           `json:"eventTitle"`
	SourcePortfolio domain.Portfolio `json:"sourcePortfolio"`
	RequestedBy     string           `json:"requestedBy"`
	Comment         string           `json:"comment"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// SocialEvent is an internals gathering. It never goes through approval.
type SocialEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DateTime    time.Time `json:"dateTime"`
	Location    string    `json:"location,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
