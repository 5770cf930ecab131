package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/infrastructure/memory"
	"ircportal/pkg/tz"
)

// keyTranslator renders every message as its key.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

func (keyTranslator) Match(string) string { return "en" }

// recordingRelay keeps what it was asked to relay.
type recordingRelay struct {
	mu   sync.Mutex
	sent []entities.Notification
	err  error
}

func (r *recordingRelay) Relay(_ context.Context, n entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.err
}

// noon on 2026-10-15 in Toronto.
var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, tz.Toronto)

func fixedClock() time.Time { return fixedNow }

var (
	president = &entities.User{ID: "u1", Name: "Sarah Khan", Role: domain.RoleCoPresident}
	eventsVP  = &entities.User{ID: "u2", Name: "Sarah Ahmed", Role: domain.RoleVP, Portfolio: domain.PortfolioEvents}
	marketer  = &entities.User{ID: "u3", Name: "Amir Khan", Role: domain.RoleTeamMember, Portfolio: domain.PortfolioMarketing}
	volunteer = &entities.User{ID: "u4", Name: "Yusuf Omar", Role: domain.RoleVolunteer}
	treasurer = &entities.User{ID: "u5", Name: "Finance VP", Role: domain.RoleVP, Portfolio: domain.PortfolioFinance}
)

type fixture struct {
	repos         *memory.Repositories
	notifications *NotificationService
	events        *EventService
	socials       *SocialService
	tasks         *TaskService
	calendar      *CalendarService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := memory.NewRepositories()
	f := &fixture{repos: repos}

	f.notifications = NewNotificationService(repos.Notifications, nil, keyTranslator{}, "en")
	f.notifications.now = fixedClock
	f.events = NewEventService(repos.Events, f.notifications)
	f.events.now = fixedClock
	f.socials = NewSocialService(repos.Socials, tz.Toronto)
	f.socials.now = fixedClock
	f.tasks = NewTaskService(repos.Tasks, f.notifications, tz.Toronto)
	f.tasks.now = fixedClock
	f.calendar = NewCalendarService(repos.Calendar, repos.Events, f.socials)
	f.calendar.now = fixedClock
	return f
}

func (f *fixture) notificationTitles(t *testing.T) []string {
	t.Helper()
	list, err := f.notifications.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("ListNotifications error: %v", err)
	}
	titles := make([]string, 0, len(list))
	for _, n := range list {
		titles = append(titles, n.Title)
	}
	return titles
}

// day returns midnight of the given October 2026 day in Toronto.
func day(d int) *time.Time {
	t := time.Date(2026, time.October, d, 0, 0, 0, 0, tz.Toronto)
	return &t
}
