package input

import (
	"context"

	"ircportal/internal/domain/entities"
)

// MeetingMinuteInput records a meeting. Date defaults to today.
type MeetingMinuteInput struct {
	GoogleDocURL string `json:"googleDocUrl" validate:"required,url,max=2000"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type MinutesUseCase interface {
	AddMinute(ctx context.Context, actor *entities.User, in MeetingMinuteInput) (*entities.MeetingMinute, error)
	ListMinutes(ctx context.Context, actor *entities.User) ([]entities.MeetingMinute, error)
	DeleteMinute(ctx context.Context, actor *entities.User, id string) error
}
