package memory

import (
	"context"
	"testing"
	"time"

	"ircportal/internal/domain"
	"ircportal/pkg/tz"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	today := time.Date(2026, time.October, 15, 0, 0, 0, 0, tz.Toronto)

	if err := Seed(ctx, repos, today); err != nil {
		t.Fatalf("Seed error: %v", err)
	}

	events, _ := repos.Events.FindAll(ctx)
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].CanMarkReady() {
		t.Error("lantern event should still miss a required checklist item")
	}
	if events[1].Status != domain.EventApproved {
		t.Errorf("food bank status = %q, want approved", events[1].Status)
	}

	entry, err := repos.Calendar.FindByID(ctx, "c1")
	if err != nil {
		t.Fatalf("FindByID(c1) error: %v", err)
	}
	if entry.Date != "2026-10-18" || entry.EventID != "e2" {
		t.Errorf("c1 = %+v, want linked to e2 on 2026-10-18", entry)
	}

	minutes, _ := repos.Minutes.FindAll(ctx)
	if len(minutes) != 2 || minutes[1].Date != "2026-10-08" {
		t.Errorf("minutes = %+v, want two with the latest on 2026-10-08", minutes)
	}

	task, _ := repos.Tasks.FindByID(ctx, "t2")
	if got := tz.Day(*task.DueDate); got != "2026-10-14" {
		t.Errorf("t2 due = %q, want 2026-10-14", got)
	}
}
