package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
)

func TestEventRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	event := &entities.Event{ID: "e1", Title: "Bake Sale", Checklist: entities.DefaultChecklist()}
	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.FindByID(ctx, "e1")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Title != "Bake Sale" {
		t.Errorf("Title = %q, want %q", got.Title, "Bake Sale")
	}

	updated, err := repo.Modify(ctx, "e1", func(e *entities.Event) error {
		e.Title = "Bake Sale II"
		return nil
	})
	if err != nil {
		t.Fatalf("Modify error: %v", err)
	}
	if updated.Title != "Bake Sale II" {
		t.Errorf("Modify returned %q, want %q", updated.Title, "Bake Sale II")
	}
	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Bake Sale II" {
		t.Errorf("FindAll = %+v, want one updated event", all)
	}

	if err := repo.Delete(ctx, "e1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.FindByID(ctx, "e1"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("FindByID after delete error = %v, want ErrEventNotFound", err)
	}
	if err := repo.Delete(ctx, "e1"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("second Delete error = %v, want ErrEventNotFound", err)
	}
}

func TestEventRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()
	if err := repo.Create(ctx, &entities.Event{ID: "e1", Checklist: entities.DefaultChecklist()}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, _ := repo.FindByID(ctx, "e1")
	got.Checklist[0].Completed = true

	again, _ := repo.FindByID(ctx, "e1")
	if again.Checklist[0].Completed {
		t.Error("mutating a returned checklist changed the stored event")
	}
}

func TestModifyUnknownRecord(t *testing.T) {
	ctx := context.Background()
	noop := func(*entities.Task) error { return nil }
	if _, err := NewTaskRepository().Modify(ctx, "nope", noop); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Modify error = %v, want ErrTaskNotFound", err)
	}
	if _, err := NewReimbursementRepository().Modify(ctx, "nope", func(*entities.Reimbursement) error { return nil }); !errors.Is(err, domain.ErrReimbursementNotFound) {
		t.Errorf("Modify error = %v, want ErrReimbursementNotFound", err)
	}
}

func TestModifyFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()
	if err := repo.Create(ctx, &entities.Event{ID: "e1", Title: "Bake Sale", Checklist: entities.DefaultChecklist()}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	boom := errors.New("boom")
	_, err := repo.Modify(ctx, "e1", func(e *entities.Event) error {
		e.Title = "changed"
		e.Checklist[0].Completed = true
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Modify error = %v, want boom", err)
	}
	got, _ := repo.FindByID(ctx, "e1")
	if got.Title != "Bake Sale" || got.Checklist[0].Completed {
		t.Errorf("failed Modify changed the stored event: %+v", got)
	}
}

func TestConcurrentModify(t *testing.T) {
	ctx := context.Background()
	repo := NewFundraisingRepository()
	if err := repo.Create(ctx, &entities.FundraisingEntry{ID: "f1"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Modify(ctx, "f1", func(e *entities.FundraisingEntry) error {
				e.Amount++
				return nil
			}); err != nil {
				t.Errorf("Modify error: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := repo.FindByID(ctx, "f1")
	if got.Amount != writers {
		t.Errorf("Amount = %v, want %d", got.Amount, writers)
	}
}

func TestFindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()
	for _, id := range []string{"c", "a", "b"} {
		if err := repo.Create(ctx, &entities.CalendarEvent{ID: id}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 2 || all[0].ID != "c" || all[1].ID != "b" {
		t.Errorf("FindAll order = %+v, want c, b", all)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewNotificationRepository().FindAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("FindAll error = %v, want context.Canceled", err)
	}
}
