package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
)

var _ input.NotificationUseCase = (*NotificationService)(nil)

// notifier is what the other services need to emit notifications.
type notifier interface {
	Notify(ctx context.Context, typ domain.NotificationType, key string, data map[string]any, relatedTo string)
}

type NotificationService struct {
	repo       output.NotificationRepository
	relay      output.NotificationRelay
	translator output.Translator
	locale     string
	now        Clock
}

// NewNotificationService creates a NotificationService. relay may be nil.
func NewNotificationService(
	repo output.NotificationRepository,
	relay output.NotificationRelay,
	translator output.Translator,
	locale string,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		relay:      relay,
		translator: translator,
		locale:     locale,
		now:        time.Now,
	}
}

func (s *NotificationService) AddNotification(ctx context.Context, in input.NotificationInput) (*entities.Notification, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	n := &entities.Notification{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		RelatedTo: in.RelatedTo,
		Timestamp: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	if s.relay != nil {
		if err := s.relay.Relay(ctx, *n); err != nil {
			logrus.WithFields(logrus.Fields{
				"notification_id": n.ID,
				"type":            n.Type,
			}).WithError(err).Warn("notification relay failed")
		}
	}
	return n, nil
}

// Notify renders the "<key>.title" and "<key>.message" translations and
// stores the result. Failures are logged, never returned, so a mutation that
// emits a notification cannot fail because of it.
func (s *NotificationService) Notify(ctx context.Context, typ domain.NotificationType, key string, data map[string]any, relatedTo string) {
	in := input.NotificationInput{
		Type:      typ,
		Title:     s.translator.T(s.locale, key+".title", data),
		Message:   s.translator.T(s.locale, key+".message", data),
		RelatedTo: relatedTo,
	}
	if _, err := s.AddNotification(ctx, in); err != nil {
		logrus.WithFields(logrus.Fields{
			"type":       typ,
			"key":        key,
			"related_to": relatedTo,
		}).WithError(err).Error("emit notification")
	}
}

// ListNotifications returns notifications newest first. Notifications with
// the same timestamp come back in reverse insertion order.
func (s *NotificationService) ListNotifications(ctx context.Context) ([]entities.Notification, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})
	return all, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list notifications: %w", err)
	}
	count := 0
	for _, n := range all {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	_, err := s.repo.Modify(ctx, id, markRead)
	return err
}

func markRead(n *entities.Notification) error {
	n.Read = true
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}
	for _, n := range all {
		if n.Read {
			continue
		}
		// A notification cleared since the listing is skipped.
		if _, err := s.repo.Modify(ctx, n.ID, markRead); err != nil && !domain.IsNotFound(err) {
			return fmt.Errorf("mark notification %s read: %w", n.ID, err)
		}
	}
	return nil
}

func (s *NotificationService) ClearNotification(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
