package entities

import (
	"time"

	"ircportal/internal/domain"
)

type Notification struct {
	ID        string                  `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	RelatedTo string                  `json:"relatedTo,omitempty"`
	Read      bool                    `json:"read"`
	Timestamp time.Time               `json:"timestamp"`
}
