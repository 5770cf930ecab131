package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
)

var _ input.FundraisingUseCase = (*FundraisingService)(nil)

// FundraisingService keeps the money-raised ledger. Only finance members and
// co-presidents write to it.
type FundraisingService struct {
	repo output.FundraisingRepository
	now  Clock
}

func NewFundraisingService(repo output.FundraisingRepository) *FundraisingService {
	return &FundraisingService{repo: repo, now: time.Now}
}

func (s *FundraisingService) CreateEntry(ctx context.Context, actor *entities.User, in input.FundraisingInput) (*entities.FundraisingEntry, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !actor.Manages(domain.PortfolioFinance) {
		return nil, domain.ErrForbidden
	}
	entry := &entities.FundraisingEntry{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Amount:      in.Amount,
		Source:      in.Source,
		SubmittedBy: actor.Name,
		Date:        in.Date,
		Notes:       in.Notes,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create fundraising entry: %w", err)
	}
	return entry, nil
}

func (s *FundraisingService) UpdateEntry(ctx context.Context, actor *entities.User, id string, patch input.FundraisingPatch) (*entities.FundraisingEntry, error) {
	if err := checkFinance(actor); err != nil {
		return nil, err
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	return s.repo.Modify(ctx, id, func(entry *entities.FundraisingEntry) error {
		if patch.Title != nil {
			entry.Title = *patch.Title
		}
		if patch.Amount != nil {
			entry.Amount = *patch.Amount
		}
		if patch.Source != nil {
			entry.Source = *patch.Source
		}
		if patch.Date != nil {
			entry.Date = *patch.Date
		}
		if patch.Notes != nil {
			entry.Notes = *patch.Notes
		}
		return nil
	})
}

func (s *FundraisingService) DeleteEntry(ctx context.Context, actor *entities.User, id string) error {
	if err := checkFinance(actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// checkFinance admits finance members and co-presidents.
func checkFinance(actor *entities.User) error {
	if actor == nil {
		return domain.ErrNotAuthenticated
	}
	if !actor.Manages(domain.PortfolioFinance) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *FundraisingService) ListEntries(ctx context.Context) ([]entities.FundraisingEntry, error) {
	return s.repo.FindAll(ctx)
}

// GetTotalMoneyRaised sums every ledger entry.
func (s *FundraisingService) GetTotalMoneyRaised(ctx context.Context) (float64, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list fundraising entries: %w", err)
	}
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total, nil
}
