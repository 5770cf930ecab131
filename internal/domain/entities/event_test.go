package entities

import (
	"testing"
	"time"

	"ircportal/internal/domain"
)

func TestDefaultChecklist(t *testing.T) {
	items := DefaultChecklist()
	if len(items) != 8 {
		t.Fatalf("len = %d, want 8", len(items))
	}
	for i, item := range items {
		if item.Completed {
			t.Errorf("item %s starts completed", item.ID)
		}
		if want := i < 3; item.Required != want {
			t.Errorf("item %s Required = %v, want %v", item.ID, item.Required, want)
		}
	}

	items[0].Completed = true
	if DefaultChecklist()[0].Completed {
		t.Error("DefaultChecklist shares state between calls")
	}
}

func TestCanMarkReady(t *testing.T) {
	e := &Event{Checklist: DefaultChecklist()}
	if e.CanMarkReady() {
		t.Fatal("fresh event is ready")
	}
	for i := 0; i < 3; i++ {
		e.Checklist[i].Completed = true
	}
	if !e.CanMarkReady() {
		t.Error("event with required items done is not ready")
	}

	e.Checklist = append(e.Checklist, ChecklistItem{ID: "9", Label: "Room booked", Required: true})
	if e.CanMarkReady() {
		t.Error("added required item does not close the gate")
	}
	if !(&Event{}).CanMarkReady() {
		t.Error("event without checklist is not ready")
	}
}

func TestEventClone(t *testing.T) {
	when := time.Date(2026, time.October, 20, 18, 0, 0, 0, time.UTC)
	orig := Event{ID: "e1", Checklist: DefaultChecklist(), DateTime: &when, ApprovedAt: &when}

	c := orig.Clone()
	c.Checklist[0].Completed = true
	*c.DateTime = when.Add(time.Hour)
	*c.ApprovedAt = when.Add(time.Hour)

	if orig.Checklist[0].Completed {
		t.Error("clone shares the checklist")
	}
	if !orig.DateTime.Equal(when) || !orig.ApprovedAt.Equal(when) {
		t.Error("clone shares time pointers")
	}
}

func TestNeedsExternals(t *testing.T) {
	tests := []struct {
		needed  bool
		comment string
		want    bool
	}{
		{true, "Contact the mosque", true},
		{true, "", false},
		{false, "Contact the mosque", false},
	}
	for _, tt := range tests {
		e := &Event{ExternalsNeeded: tt.needed, ExternalsComment: tt.comment}
		if got := e.NeedsExternals(); got != tt.want {
			t.Errorf("NeedsExternals(%v, %q) = %v, want %v", tt.needed, tt.comment, got, tt.want)
		}
	}
}

func TestManages(t *testing.T) {
	tests := []struct {
		name string
		user *User
		p    domain.Portfolio
		want bool
	}{
		{"nil user", nil, domain.PortfolioEvents, false},
		{"co-president", &User{Role: domain.RoleCoPresident}, domain.PortfolioAdvocacy, true},
		{"own vp", &User{Role: domain.RoleVP, Portfolio: domain.PortfolioEvents}, domain.PortfolioEvents, true},
		{"other vp", &User{Role: domain.RoleVP, Portfolio: domain.PortfolioEvents}, domain.PortfolioCharity, false},
		{"own member", &User{Role: domain.RoleTeamMember, Portfolio: domain.PortfolioMarketing}, domain.PortfolioMarketing, true},
		{"volunteer", &User{Role: domain.RoleVolunteer, Portfolio: domain.PortfolioInternals}, domain.PortfolioInternals, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.Manages(tt.p); got != tt.want {
				t.Errorf("Manages(%s) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
