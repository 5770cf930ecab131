package output

import (
	"context"

	"ircportal/internal/domain/entities"
)

// NotificationRelay forwards a stored notification to an external channel.
type NotificationRelay interface {
	Relay(ctx context.Context, n entities.Notification) error
}
