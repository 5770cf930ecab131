package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
	"ircportal/pkg/tz"
)

var _ input.SocialUseCase = (*SocialService)(nil)

// SocialService owns internals socials. Socials skip the approval workflow.
type SocialService struct {
	repo output.SocialEventRepository
	loc  *time.Location
	now  Clock
}

func NewSocialService(repo output.SocialEventRepository, loc *time.Location) *SocialService {
	return &SocialService{repo: repo, loc: loc, now: time.Now}
}

func (s *SocialService) CreateSocialEvent(ctx context.Context, actor *entities.User, in input.CreateSocialEventInput) (*entities.SocialEvent, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	social := &entities.SocialEvent{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
		Location:    in.Location,
		CreatedBy:   actor.Name,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, social); err != nil {
		return nil, fmt.Errorf("create social event: %w", err)
	}
	return social, nil
}

func (s *SocialService) DeleteSocialEvent(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *SocialService) ListSocialEvents(ctx context.Context) ([]entities.SocialEvent, error) {
	return s.repo.FindAll(ctx)
}

// GetUpcomingSocials returns socials dated today or later, soonest first.
func (s *SocialService) GetUpcomingSocials(ctx context.Context) ([]entities.SocialEvent, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social events: %w", err)
	}
	today := tz.Date(s.now(), s.loc)
	out := make([]entities.SocialEvent, 0, len(all))
	for _, social := range all {
		if tz.Day(social.DateTime) >= today {
			out = append(out, social)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out, nil
}

// onDate returns socials scheduled on date, read from the wall-clock date
// they were created with.
func (s *SocialService) onDate(ctx context.Context, date string) ([]entities.SocialEvent, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social events: %w", err)
	}
	out := make([]entities.SocialEvent, 0)
	for _, social := range all {
		if tz.Day(social.DateTime) == date {
			out = append(out, social)
		}
	}
	return out, nil
}
