package application

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/pkg/tz"
)

// ReminderService emits due-soon and overdue notifications for open tasks.
// Each task is reminded at most once per type for the life of the process.
type ReminderService struct {
	tasks    *TaskService
	notifier notifier

	mu   sync.Mutex
	sent map[string]bool
}

func NewReminderService(tasks *TaskService, notifications *NotificationService) *ReminderService {
	s := &ReminderService{tasks: tasks, sent: make(map[string]bool)}
	if notifications != nil {
		s.notifier = notifications
	}
	return s
}

// Scan checks every open task once and returns how many reminders it emitted.
func (s *ReminderService) Scan(ctx context.Context) (int, error) {
	overdue, err := s.tasks.GetOverdueTasks(ctx)
	if err != nil {
		return 0, err
	}
	dueSoon, err := s.tasks.GetTasksDueSoon(ctx)
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, t := range overdue {
		if s.remind(ctx, domain.NotificationOverdue, "notification.task_overdue", t) {
			emitted++
		}
	}
	for _, t := range dueSoon {
		if s.remind(ctx, domain.NotificationDueSoon, "notification.task_due_soon", t) {
			emitted++
		}
	}
	return emitted, nil
}

func (s *ReminderService) remind(ctx context.Context, typ domain.NotificationType, key string, t entities.Task) bool {
	id := string(typ) + ":" + t.ID
	s.mu.Lock()
	if s.sent[id] {
		s.mu.Unlock()
		return false
	}
	s.sent[id] = true
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(ctx, typ, key, map[string]any{
			"Title":    t.Title,
			"Assignee": t.AssignedTo,
			"Due":      tz.Day(*t.DueDate),
		}, t.ID)
	}
	return true
}

// Run scans on every tick until ctx is cancelled.
func (s *ReminderService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if n, err := s.Scan(ctx); err != nil {
			logrus.WithError(err).Error("reminder scan failed")
		} else if n > 0 {
			logrus.WithField("count", n).Info("task reminders sent")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
