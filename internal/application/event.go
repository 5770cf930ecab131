package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventService owns events, their checklist and the approval workflow.
type EventService struct {
	eventRepo output.EventRepository
	notifier  notifier
	now       Clock
}

// NewEventService creates an EventService. notifications may be nil.
func NewEventService(eventRepo output.EventRepository, notifications *NotificationService) *EventService {
	s := &EventService{eventRepo: eventRepo, now: time.Now}
	if notifications != nil {
		s.notifier = notifications
	}
	return s
}

func (s *EventService) CreateEvent(ctx context.Context, actor *entities.User, in input.CreateEventInput) (*entities.Event, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !actor.Manages(in.Portfolio) {
		return nil, domain.ErrForbidden
	}
	now := s.now()
	event := &entities.Event{
		ID:                 uuid.NewString(),
		Title:              in.Title,
		Description:        in.Description,
		Portfolio:          in.Portfolio,
		CreatedBy:          actor.Name,
		Status:             domain.EventInProgress,
		DateTime:           in.DateTime,
		Location:           in.Location,
		Budget:             in.Budget,
		MarketingRequested: in.MarketingRequested,
		ExternalsNeeded:    in.ExternalsNeeded,
		ExternalsComment:   in.ExternalsComment,
		Checklist:          entities.DefaultChecklist(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	data := map[string]any{"Title": event.Title, "Portfolio": string(event.Portfolio)}
	if event.MarketingRequested {
		s.notify(ctx, domain.NotificationTaskAssigned, "notification.marketing_request", data, event.ID)
	}
	if event.ExternalsNeeded {
		s.notify(ctx, domain.NotificationTaskAssigned, "notification.externals_request", data, event.ID)
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, patch input.EventPatch) (*entities.Event, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(e *entities.Event) error {
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.DateTime != nil {
			dt := *patch.DateTime
			e.DateTime = &dt
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		if patch.Budget != nil {
			e.Budget = *patch.Budget
		}
		if patch.MarketingRequested != nil {
			e.MarketingRequested = *patch.MarketingRequested
		}
		if patch.ExternalsNeeded != nil {
			e.ExternalsNeeded = *patch.ExternalsNeeded
		}
		return nil
	})
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *EventService) UpdateChecklistItem(ctx context.Context, eventID, itemID string, completed bool) (*entities.Event, error) {
	return s.mutate(ctx, eventID, func(e *entities.Event) error {
		for i := range e.Checklist {
			if e.Checklist[i].ID == itemID {
				e.Checklist[i].Completed = completed
				return nil
			}
		}
		return domain.ErrChecklistItemNotFound
	})
}

// AddChecklistItem appends an uncompleted item. A required item closes the
// ready gate until it is completed.
func (s *EventService) AddChecklistItem(ctx context.Context, eventID, label string, required bool) (*entities.Event, error) {
	if label == "" {
		return nil, domain.NewValidationError("label is required")
	}
	return s.mutate(ctx, eventID, func(e *entities.Event) error {
		e.Checklist = append(e.Checklist, entities.ChecklistItem{
			ID:       nextChecklistID(e.Checklist),
			Label:    label,
			Required: required,
		})
		return nil
	})
}

func nextChecklistID(items []entities.ChecklistItem) string {
	highest := 0
	for _, item := range items {
		if n, err := strconv.Atoi(item.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

// CanMarkReady reports whether all required checklist items of the event are
// completed. A missing event is never ready.
func (s *EventService) CanMarkReady(ctx context.Context, eventID string) bool {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return false
	}
	return event.CanMarkReady()
}

// UpdateEventStatus moves an event one step through the approval workflow.
// in-progress -> ready needs the checklist gate and a member of the event's
// portfolio (or a co-president); ready -> approved needs a co-president.
// Every other move, including leaving approved, is rejected.
func (s *EventService) UpdateEventStatus(ctx context.Context, actor *entities.User, eventID string, status domain.EventStatus) (*entities.Event, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status is invalid")
	}
	event, err := s.mutate(ctx, eventID, func(e *entities.Event) error {
		if !e.Status.CanTransition(status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, e.Status, status)
		}
		switch status {
		case domain.EventReady:
			if !actor.Manages(e.Portfolio) {
				return domain.ErrForbidden
			}
			if !e.CanMarkReady() {
				return domain.ErrChecklistIncomplete
			}
		case domain.EventApproved:
			if !actor.IsCoPresident() {
				return domain.ErrForbidden
			}
			approvedAt := s.now()
			e.ApprovedBy = actor.Name
			e.ApprovedAt = &approvedAt
		}
		e.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	data := map[string]any{"Title": event.Title, "Portfolio": string(event.Portfolio), "By": actor.Name}
	switch status {
	case domain.EventReady:
		s.notify(ctx, domain.NotificationNeedsReview, "notification.event_ready", data, event.ID)
	case domain.EventApproved:
		s.notify(ctx, domain.NotificationApproved, "notification.event_approved", data, event.ID)
	}
	return event, nil
}

func (s *EventService) UpdateExternalsComment(ctx context.Context, eventID, comment string) (*entities.Event, error) {
	return s.mutate(ctx, eventID, func(e *entities.Event) error {
		e.ExternalsComment = comment
		return nil
	})
}

func (s *EventService) GetEventsByPortfolio(ctx context.Context, p domain.Portfolio) ([]entities.Event, error) {
	return s.filter(ctx, func(e *entities.Event) bool { return e.Portfolio == p })
}

func (s *EventService) GetMarketingRequests(ctx context.Context) ([]entities.Event, error) {
	return s.filter(ctx, func(e *entities.Event) bool { return e.MarketingRequested })
}

// GetBudgetRequests returns events and charity events asking for money.
func (s *EventService) GetBudgetRequests(ctx context.Context) ([]entities.Event, error) {
	return s.filter(ctx, func(e *entities.Event) bool {
		return e.Portfolio.RequestsBudget() && e.Budget > 0
	})
}

func (s *EventService) GetExternalsRequests(ctx context.Context) ([]entities.Event, error) {
	return s.filter(ctx, func(e *entities.Event) bool { return e.ExternalsNeeded })
}

func (s *EventService) GetExternalsTasks(ctx context.Context) ([]entities.ExternalsTask, error) {
	events, err := s.filter(ctx, (*entities.Event).NeedsExternals)
	if err != nil {
		return nil, err
	}
	tasks := make([]entities.ExternalsTask, 0, len(events))
	for _, e := range events {
		tasks = append(tasks, entities.ExternalsTask{
			ID:              "ext-" + e.ID,
			EventID:         e.ID,
			EventTitle:      e.Title,
			SourcePortfolio: e.Portfolio,
			RequestedBy:     e.CreatedBy,
			Comment:         e.ExternalsComment,
			Status:          "pending",
			CreatedAt:       e.UpdatedAt,
		})
	}
	return tasks, nil
}

// GetPendingApprovals returns creator-portfolio events not yet approved.
func (s *EventService) GetPendingApprovals(ctx context.Context) ([]entities.Event, error) {
	return s.filter(ctx, func(e *entities.Event) bool {
		return e.Portfolio.IsCreator() && e.Status != domain.EventApproved
	})
}

func (s *EventService) GetApprovedEvents(ctx context.Context) ([]entities.Event, error) {
	return s.filter(ctx, func(e *entities.Event) bool {
		return e.Portfolio.IsCreator() && e.Status == domain.EventApproved
	})
}

// mutate applies fn to the stored event and stamps UpdatedAt in one repository
// step, so concurrent writers never overwrite each other. Nothing is written
// when fn fails.
func (s *EventService) mutate(ctx context.Context, id string, fn func(*entities.Event) error) (*entities.Event, error) {
	return s.eventRepo.Modify(ctx, id, func(e *entities.Event) error {
		if err := fn(e); err != nil {
			return err
		}
		e.UpdatedAt = s.now()
		return nil
	})
}

func (s *EventService) filter(ctx context.Context, keep func(*entities.Event) bool) ([]entities.Event, error) {
	all, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]entities.Event, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *EventService) notify(ctx context.Context, typ domain.NotificationType, key string, data map[string]any, relatedTo string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, typ, key, data, relatedTo)
	}
}
