package application

import (
	"context"
	"errors"
	"testing"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
)

func createBakeSale(t *testing.T, f *fixture) *entities.Event {
	t.Helper()
	event, err := f.events.CreateEvent(context.Background(), eventsVP, input.CreateEventInput{
		Title:     "Bake Sale",
		Portfolio: domain.PortfolioEvents,
		Budget:    100,
	})
	if err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}
	return event
}

func completeRequired(t *testing.T, f *fixture, eventID string) {
	t.Helper()
	for _, item := range []string{"1", "2", "3"} {
		if _, err := f.events.UpdateChecklistItem(context.Background(), eventID, item, true); err != nil {
			t.Fatalf("UpdateChecklistItem(%s) error: %v", item, err)
		}
	}
}

func TestCreateEventDefaults(t *testing.T) {
	f := newFixture(t)
	event := createBakeSale(t, f)

	if event.Status != domain.EventInProgress {
		t.Errorf("Status = %q, want in-progress", event.Status)
	}
	if len(event.Checklist) != 8 {
		t.Fatalf("len(Checklist) = %d, want 8", len(event.Checklist))
	}
	for i, item := range event.Checklist {
		if item.Completed {
			t.Errorf("item %s completed on creation", item.ID)
		}
		if wantRequired := i < 3; item.Required != wantRequired {
			t.Errorf("item %s Required = %v, want %v", item.ID, item.Required, wantRequired)
		}
	}
	if f.events.CanMarkReady(context.Background(), event.ID) {
		t.Error("a fresh event passed the checklist gate")
	}
	if event.CreatedBy != "Sarah Ahmed" || !event.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedBy/CreatedAt = %q/%v", event.CreatedBy, event.CreatedAt)
	}
}

func TestCreateEventRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name  string
		actor *entities.User
		in    input.CreateEventInput
		want  error
	}{
		{"no actor", nil, input.CreateEventInput{Title: "x", Portfolio: domain.PortfolioEvents}, domain.ErrNotAuthenticated},
		{"missing title", eventsVP, input.CreateEventInput{Portfolio: domain.PortfolioEvents}, domain.ErrValidation},
		{"bad portfolio", eventsVP, input.CreateEventInput{Title: "x", Portfolio: "sports"}, domain.ErrValidation},
		{"negative budget", eventsVP, input.CreateEventInput{Title: "x", Portfolio: domain.PortfolioEvents, Budget: -1}, domain.ErrValidation},
		{"other portfolio", eventsVP, input.CreateEventInput{Title: "x", Portfolio: domain.PortfolioCharity}, domain.ErrForbidden},
		{"volunteer", volunteer, input.CreateEventInput{Title: "x", Portfolio: domain.PortfolioEvents}, domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.events.CreateEvent(ctx, tt.actor, tt.in); !errors.Is(err, tt.want) {
				t.Errorf("CreateEvent error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBakeSaleScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event := createBakeSale(t, f)

	requests, _ := f.events.GetBudgetRequests(ctx)
	if len(requests) != 1 || requests[0].ID != event.ID {
		t.Fatalf("GetBudgetRequests = %+v, want the bake sale", requests)
	}

	completeRequired(t, f, event.ID)
	if !f.events.CanMarkReady(ctx, event.ID) {
		t.Fatal("CanMarkReady = false after completing required items")
	}

	ready, err := f.events.UpdateEventStatus(ctx, eventsVP, event.ID, domain.EventReady)
	if err != nil {
		t.Fatalf("mark ready error: %v", err)
	}
	if ready.Status != domain.EventReady {
		t.Errorf("Status = %q, want ready", ready.Status)
	}

	approved, err := f.events.UpdateEventStatus(ctx, president, event.ID, domain.EventApproved)
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if approved.ApprovedBy != "Sarah Khan" || approved.ApprovedAt == nil {
		t.Errorf("ApprovedBy/ApprovedAt = %q/%v", approved.ApprovedBy, approved.ApprovedAt)
	}

	events, _ := f.events.GetEventsByPortfolio(ctx, domain.PortfolioEvents)
	found := false
	for _, e := range events {
		if e.ID == event.ID && e.Status == domain.EventApproved {
			found = true
		}
	}
	if !found {
		t.Error("approved bake sale missing from the events portfolio")
	}

	got := f.notificationTitles(t)
	want := []string{"notification.event_approved.title", "notification.event_ready.title"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		setup  func(t *testing.T, f *fixture, id string)
		actor  *entities.User
		target domain.EventStatus
		want   error
	}{
		{"ready without gate", nil, eventsVP, domain.EventReady, domain.ErrChecklistIncomplete},
		{"skip to approved", func(t *testing.T, f *fixture, id string) { completeRequired(t, f, id) }, president, domain.EventApproved, domain.ErrInvalidTransition},
		{"same state", nil, eventsVP, domain.EventInProgress, domain.ErrInvalidTransition},
		{"outsider marks ready", func(t *testing.T, f *fixture, id string) { completeRequired(t, f, id) }, marketer, domain.EventReady, domain.ErrForbidden},
		{"vp approves", markReady, eventsVP, domain.EventApproved, domain.ErrForbidden},
		{"ready back to in-progress", markReady, president, domain.EventInProgress, domain.ErrInvalidTransition},
		{"approved is terminal", markApproved, president, domain.EventInProgress, domain.ErrInvalidTransition},
		{"approved to ready", markApproved, president, domain.EventReady, domain.ErrInvalidTransition},
		{"unknown status", nil, president, "cancelled", domain.ErrValidation},
		{"no actor", nil, nil, domain.EventReady, domain.ErrNotAuthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			event := createBakeSale(t, f)
			if tt.setup != nil {
				tt.setup(t, f, event.ID)
			}
			before, _ := f.events.GetEvent(ctx, event.ID)

			if _, err := f.events.UpdateEventStatus(ctx, tt.actor, event.ID, tt.target); !errors.Is(err, tt.want) {
				t.Fatalf("UpdateEventStatus error = %v, want %v", err, tt.want)
			}
			after, _ := f.events.GetEvent(ctx, event.ID)
			if after.Status != before.Status {
				t.Errorf("status changed from %q to %q on a rejected transition", before.Status, after.Status)
			}
		})
	}
}

func markReady(t *testing.T, f *fixture, id string) {
	t.Helper()
	completeRequired(t, f, id)
	if _, err := f.events.UpdateEventStatus(context.Background(), eventsVP, id, domain.EventReady); err != nil {
		t.Fatalf("mark ready error: %v", err)
	}
}

func markApproved(t *testing.T, f *fixture, id string) {
	t.Helper()
	markReady(t, f, id)
	if _, err := f.events.UpdateEventStatus(context.Background(), president, id, domain.EventApproved); err != nil {
		t.Fatalf("approve error: %v", err)
	}
}

func TestAddChecklistItemClosesGate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event := createBakeSale(t, f)
	completeRequired(t, f, event.ID)

	updated, err := f.events.AddChecklistItem(ctx, event.ID, "Venue insurance", true)
	if err != nil {
		t.Fatalf("AddChecklistItem error: %v", err)
	}
	if last := updated.Checklist[len(updated.Checklist)-1]; last.ID != "9" || last.Completed {
		t.Errorf("new item = %+v, want id 9 uncompleted", last)
	}
	if f.events.CanMarkReady(ctx, event.ID) {
		t.Error("CanMarkReady = true with an open required item")
	}

	if _, err := f.events.AddChecklistItem(ctx, event.ID, "", false); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty label error = %v, want ErrValidation", err)
	}
}

func TestChecklistErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event := createBakeSale(t, f)

	if _, err := f.events.UpdateChecklistItem(ctx, event.ID, "42", true); !errors.Is(err, domain.ErrChecklistItemNotFound) {
		t.Errorf("unknown item error = %v, want ErrChecklistItemNotFound", err)
	}
	if _, err := f.events.UpdateChecklistItem(ctx, "missing", "1", true); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("unknown event error = %v, want ErrEventNotFound", err)
	}
	if f.events.CanMarkReady(ctx, "missing") {
		t.Error("CanMarkReady = true for a missing event")
	}
}

func TestUpdateEventPatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event := createBakeSale(t, f)

	title := "Bake Sale 2"
	budget := 0.0
	updated, err := f.events.UpdateEvent(ctx, event.ID, input.EventPatch{Title: &title, Budget: &budget})
	if err != nil {
		t.Fatalf("UpdateEvent error: %v", err)
	}
	if updated.Title != title || updated.Budget != 0 || updated.Status != domain.EventInProgress {
		t.Errorf("UpdateEvent = %+v", updated)
	}
	if requests, _ := f.events.GetBudgetRequests(ctx); len(requests) != 0 {
		t.Errorf("GetBudgetRequests = %d events, want none after clearing the budget", len(requests))
	}
}

func TestCrossPortfolioRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.events.CreateEvent(ctx, president, input.CreateEventInput{
		Title:              "Food Drive",
		Portfolio:          domain.PortfolioCharity,
		MarketingRequested: true,
		ExternalsNeeded:    true,
	})
	if err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}
	advocacy, err := f.events.CreateEvent(ctx, president, input.CreateEventInput{
		Title:           "Panel",
		Portfolio:       domain.PortfolioAdvocacy,
		Budget:          50,
		ExternalsNeeded: true,
	})
	if err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}

	if got, _ := f.events.GetMarketingRequests(ctx); len(got) != 1 {
		t.Errorf("GetMarketingRequests = %d, want 1", len(got))
	}
	if got, _ := f.events.GetExternalsRequests(ctx); len(got) != 2 {
		t.Errorf("GetExternalsRequests = %d, want 2", len(got))
	}
	if got, _ := f.events.GetBudgetRequests(ctx); len(got) != 0 {
		t.Errorf("GetBudgetRequests = %d, want 0 (advocacy does not request budget)", len(got))
	}
	if got, _ := f.events.GetExternalsTasks(ctx); len(got) != 0 {
		t.Errorf("GetExternalsTasks = %d, want 0 without comments", len(got))
	}

	if _, err := f.events.UpdateExternalsComment(ctx, advocacy.ID, "Invite speakers"); err != nil {
		t.Fatalf("UpdateExternalsComment error: %v", err)
	}
	tasks, _ := f.events.GetExternalsTasks(ctx)
	if len(tasks) != 1 || tasks[0].ID != "ext-"+advocacy.ID || tasks[0].Status != "pending" || tasks[0].Comment != "Invite speakers" {
		t.Errorf("GetExternalsTasks = %+v", tasks)
	}

	if got := len(f.notificationTitles(t)); got != 3 {
		t.Errorf("notifications = %d, want 3 (marketing + 2 externals)", got)
	}
}

func TestApprovalProjections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bake := createBakeSale(t, f)
	markApproved(t, f, bake.ID)
	if _, err := f.events.CreateEvent(ctx, president, input.CreateEventInput{Title: "Drive", Portfolio: domain.PortfolioCharity}); err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}
	if _, err := f.events.CreateEvent(ctx, president, input.CreateEventInput{Title: "Launch", Portfolio: domain.PortfolioMarketing}); err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}

	pending, _ := f.events.GetPendingApprovals(ctx)
	if len(pending) != 1 || pending[0].Title != "Drive" {
		t.Errorf("GetPendingApprovals = %+v, want the charity drive", pending)
	}
	approved, _ := f.events.GetApprovedEvents(ctx)
	if len(approved) != 1 || approved[0].ID != bake.ID {
		t.Errorf("GetApprovedEvents = %+v, want the bake sale", approved)
	}
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event := createBakeSale(t, f)
	markApproved(t, f, event.ID)

	if err := f.events.DeleteEvent(ctx, event.ID); err != nil {
		t.Fatalf("DeleteEvent error: %v", err)
	}
	if _, err := f.events.GetEvent(ctx, event.ID); !domain.IsNotFound(err) {
		t.Errorf("GetEvent after delete error = %v, want not found", err)
	}
}
