package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"ircportal/internal/domain"
	"ircportal/internal/infrastructure/memory"
	"ircportal/internal/ports/input"
)

func TestNotificationLifecycle(t *testing.T) {
	ctx := context.Background()
	relay := &recordingRelay{}
	svc := NewNotificationService(memory.NewNotificationRepository(), relay, keyTranslator{}, "en")

	clock := fixedNow
	svc.now = func() time.Time { return clock }

	first, err := svc.AddNotification(ctx, input.NotificationInput{Type: domain.NotificationTaskAssigned, Title: "first", Message: "m"})
	if err != nil {
		t.Fatalf("AddNotification error: %v", err)
	}
	clock = clock.Add(time.Minute)
	if _, err := svc.AddNotification(ctx, input.NotificationInput{Type: domain.NotificationOverdue, Title: "second", Message: "m"}); err != nil {
		t.Fatalf("AddNotification error: %v", err)
	}

	list, _ := svc.ListNotifications(ctx)
	if len(list) != 2 || list[0].Title != "second" || list[0].Read {
		t.Fatalf("ListNotifications = %+v, want newest unread first", list)
	}
	if len(relay.sent) != 2 {
		t.Errorf("relayed %d notifications, want 2", len(relay.sent))
	}

	if err := svc.MarkAsRead(ctx, first.ID); err != nil {
		t.Fatalf("MarkAsRead error: %v", err)
	}
	if err := svc.MarkAsRead(ctx, first.ID); err != nil {
		t.Errorf("MarkAsRead twice error: %v", err)
	}
	if n, _ := svc.UnreadCount(ctx); n != 1 {
		t.Errorf("UnreadCount = %d, want 1", n)
	}
	if err := svc.MarkAllAsRead(ctx); err != nil {
		t.Fatalf("MarkAllAsRead error: %v", err)
	}
	if n, _ := svc.UnreadCount(ctx); n != 0 {
		t.Errorf("UnreadCount = %d, want 0", n)
	}

	if err := svc.ClearNotification(ctx, first.ID); err != nil {
		t.Fatalf("ClearNotification error: %v", err)
	}
	if err := svc.MarkAsRead(ctx, first.ID); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("MarkAsRead cleared error = %v, want ErrNotificationNotFound", err)
	}
}

func TestNotificationRelayFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepository()
	svc := NewNotificationService(repo, &recordingRelay{err: errors.New("discord down")}, keyTranslator{}, "en")

	if _, err := svc.AddNotification(ctx, input.NotificationInput{Type: domain.NotificationApproved, Title: "t", Message: "m"}); err != nil {
		t.Fatalf("AddNotification error = %v, want nil despite relay failure", err)
	}
	if all, _ := repo.FindAll(ctx); len(all) != 1 {
		t.Errorf("stored %d notifications, want 1", len(all))
	}
}

func TestNotifyRendersKeys(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(memory.NewNotificationRepository(), nil, keyTranslator{}, "en")

	svc.Notify(ctx, domain.NotificationNeedsReview, "notification.event_ready", nil, "e1")
	list, _ := svc.ListNotifications(ctx)
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	n := list[0]
	if n.Title != "notification.event_ready.title" || n.Message != "notification.event_ready.message" || n.RelatedTo != "e1" {
		t.Errorf("notification = %+v", n)
	}

	svc.Notify(ctx, "bogus", "notification.event_ready", nil, "e1")
	if list, _ := svc.ListNotifications(ctx); len(list) != 1 {
		t.Errorf("invalid notification type was stored")
	}
}
