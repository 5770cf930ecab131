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

var _ input.MinutesUseCase = (*MinutesService)(nil)

// MinutesService keeps the internals meeting minutes. Only internals members
// and co-presidents see or change them.
type MinutesService struct {
	repo output.MeetingMinuteRepository
	loc  *time.Location
	now  Clock
}

func NewMinutesService(repo output.MeetingMinuteRepository, loc *time.Location) *MinutesService {
	return &MinutesService{repo: repo, loc: loc, now: time.Now}
}

func (s *MinutesService) AddMinute(ctx context.Context, actor *entities.User, in input.MeetingMinuteInput) (*entities.MeetingMinute, error) {
	if err := checkInternals(actor); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := s.now()
	minute := &entities.MeetingMinute{
		ID:           uuid.NewString(),
		Date:         in.Date,
		GoogleDocURL: in.GoogleDocURL,
		SubmittedBy:  actor.Name,
		CreatedAt:    now,
	}
	if minute.Date == "" {
		minute.Date = tz.Date(now, s.loc)
	}
	if err := s.repo.Create(ctx, minute); err != nil {
		return nil, fmt.Errorf("create meeting minute: %w", err)
	}
	return minute, nil
}

// ListMinutes returns the newest meeting first; minutes of the same day come
// back latest added first.
func (s *MinutesService) ListMinutes(ctx context.Context, actor *entities.User) ([]entities.MeetingMinute, error) {
	if err := checkInternals(actor); err != nil {
		return nil, err
	}
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meeting minutes: %w", err)
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date > all[j].Date })
	return all, nil
}

func (s *MinutesService) DeleteMinute(ctx context.Context, actor *entities.User, id string) error {
	if err := checkInternals(actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func checkInternals(actor *entities.User) error {
	if actor == nil {
		return domain.ErrNotAuthenticated
	}
	if !actor.Manages(domain.PortfolioInternals) {
		return domain.ErrForbidden
	}
	return nil
}
