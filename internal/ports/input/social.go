package input

import (
	"context"
	"time"

	"ircportal/internal/domain/entities"
)

type CreateSocialEventInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	DateTime    time.Time `json:"dateTime" validate:"required"`
	Location    string    `json:"location" validate:"max=200"`
}

type SocialUseCase interface {
	CreateSocialEvent(ctx context.Context, actor *entities.User, in CreateSocialEventInput) (*entities.SocialEvent, error)
	DeleteSocialEvent(ctx context.Context, id string) error
	ListSocialEvents(ctx context.Context) ([]entities.SocialEvent, error)
	GetUpcomingSocials(ctx context.Context) ([]entities.SocialEvent, error)
}
