package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
	"ircportal/pkg/tz"
)

var _ input.CalendarUseCase = (*CalendarService)(nil)

// CalendarService owns calendar entries and projects them into the portfolio,
// shared and dashboard views. It only reads events and socials.
type CalendarService struct {
	calendarRepo output.CalendarRepository
	eventRepo    output.EventRepository
	socials      *SocialService
	now          Clock
}

func NewCalendarService(calendarRepo output.CalendarRepository, eventRepo output.EventRepository, socials *SocialService) *CalendarService {
	return &CalendarService{
		calendarRepo: calendarRepo,
		eventRepo:    eventRepo,
		socials:      socials,
		now:          time.Now,
	}
}

func (s *CalendarService) AddEntry(ctx context.Context, actor *entities.User, in input.CalendarEntryInput) (*entities.CalendarEvent, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !actor.Manages(in.Portfolio) {
		return nil, domain.ErrForbidden
	}
	if in.EventID != "" {
		if _, err := s.eventRepo.FindByID(ctx, in.EventID); err != nil {
			return nil, err
		}
	}
	entry := &entities.CalendarEvent{
		ID:          uuid.NewString(),
		EventID:     in.EventID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Portfolio:   in.Portfolio,
		Type:        in.Type,
		Color:       in.Color,
		Visible:     in.Visible,
		CreatedBy:   actor.Name,
		CreatedAt:   s.now(),
	}
	if err := s.calendarRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create calendar entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry and DeleteEntry are open to members of the entry's portfolio
// and co-presidents.
func (s *CalendarService) UpdateEntry(ctx context.Context, actor *entities.User, id string, patch input.CalendarEntryPatch) (*entities.CalendarEvent, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	if patch.EventID != nil && *patch.EventID != "" {
		if _, err := s.eventRepo.FindByID(ctx, *patch.EventID); err != nil {
			return nil, err
		}
	}
	return s.calendarRepo.Modify(ctx, id, func(entry *entities.CalendarEvent) error {
		if !actor.Manages(entry.Portfolio) {
			return domain.ErrForbidden
		}
		if patch.EventID != nil {
			entry.EventID = *patch.EventID
		}
		if patch.Title != nil {
			entry.Title = *patch.Title
		}
		if patch.Description != nil {
			entry.Description = *patch.Description
		}
		if patch.Date != nil {
			entry.Date = *patch.Date
		}
		if patch.StartTime != nil {
			entry.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			entry.EndTime = *patch.EndTime
		}
		if patch.Type != nil {
			entry.Type = *patch.Type
		}
		if patch.Color != nil {
			entry.Color = *patch.Color
		}
		if patch.Visible != nil {
			entry.Visible = *patch.Visible
		}
		return nil
	})
}

func (s *CalendarService) DeleteEntry(ctx context.Context, actor *entities.User, id string) error {
	if actor == nil {
		return domain.ErrNotAuthenticated
	}
	entry, err := s.calendarRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Manages(entry.Portfolio) {
		return domain.ErrForbidden
	}
	return s.calendarRepo.Delete(ctx, id)
}

func (s *CalendarService) EntriesByPortfolio(ctx context.Context, p domain.Portfolio) ([]entities.CalendarEvent, error) {
	return s.entries(ctx, func(c *entities.CalendarEvent) bool { return c.Portfolio == p })
}

func (s *CalendarService) EntriesByDate(ctx context.Context, date string) ([]entities.CalendarEvent, error) {
	return s.entries(ctx, func(c *entities.CalendarEvent) bool { return c.Date == date })
}

// SharedEntries returns visible entries of the portfolios on the club calendar.
func (s *CalendarService) SharedEntries(ctx context.Context) ([]entities.CalendarEvent, error) {
	return s.entries(ctx, isShared)
}

func isShared(c *entities.CalendarEvent) bool {
	return c.Visible && c.Portfolio.IsShared()
}

// PortfolioView returns the entries of p on date. An entry tied to a tracked
// event shows once the event is ready or approved; calendar-only entries
// always show.
func (s *CalendarService) PortfolioView(ctx context.Context, p domain.Portfolio, date string) ([]entities.CalendarEvent, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return s.entries(ctx, func(c *entities.CalendarEvent) bool {
		if c.Portfolio != p || c.Date != date {
			return false
		}
		tracked := matchEvent(c, events)
		return tracked == nil || tracked.Status == domain.EventReady || tracked.Status == domain.EventApproved
	})
}

// SharedView returns the shared calendar entries on date.
func (s *CalendarService) SharedView(ctx context.Context, date string) ([]entities.CalendarEvent, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	return s.entries(ctx, func(c *entities.CalendarEvent) bool {
		return isShared(c) && c.Date == date
	})
}

// DashboardView returns the shared entries on date that belong to a creator
// portfolio and whose tracked event is approved, followed by every social on
// that date.
func (s *CalendarService) DashboardView(ctx context.Context, date string) ([]entities.CalendarEvent, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	approved, err := s.entries(ctx, func(c *entities.CalendarEvent) bool {
		if !isShared(c) || c.Date != date || !c.Portfolio.IsCreator() {
			return false
		}
		tracked := matchEvent(c, events)
		return tracked != nil && tracked.Status == domain.EventApproved
	})
	if err != nil {
		return nil, err
	}

	socials, err := s.socials.onDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, social := range socials {
		approved = append(approved, socialEntry(social))
	}
	return approved, nil
}

// matchEvent finds the tracked event behind a calendar entry: by explicit
// link when the entry has one, otherwise by case-insensitive title within
// the entry's portfolio.
func matchEvent(c *entities.CalendarEvent, events []entities.Event) *entities.Event {
	if c.EventID != "" {
		for i := range events {
			if events[i].ID == c.EventID {
				return &events[i]
			}
		}
		return nil
	}
	for i := range events {
		if events[i].Portfolio == c.Portfolio && strings.EqualFold(events[i].Title, c.Title) {
			return &events[i]
		}
	}
	return nil
}

func socialEntry(social entities.SocialEvent) entities.CalendarEvent {
	entry := entities.CalendarEvent{
		ID:          social.ID,
		Title:       social.Title,
		Description: social.Description,
		Date:        tz.Day(social.DateTime),
		Portfolio:   domain.PortfolioInternals,
		Type:        domain.EntryEvent,
		Visible:     true,
		CreatedBy:   social.CreatedBy,
		CreatedAt:   social.CreatedAt,
	}
	if h, m, _ := social.DateTime.Clock(); h != 0 || m != 0 {
		entry.StartTime = social.DateTime.Format("15:04")
	}
	return entry
}

func checkDate(date string) error {
	if _, err := time.Parse(tz.DateLayout, date); err != nil {
		return domain.NewValidationError("date must match " + tz.DateLayout)
	}
	return nil
}

func (s *CalendarService) entries(ctx context.Context, keep func(*entities.CalendarEvent) bool) ([]entities.CalendarEvent, error) {
	all, err := s.calendarRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendar entries: %w", err)
	}
	out := make([]entities.CalendarEvent, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}
