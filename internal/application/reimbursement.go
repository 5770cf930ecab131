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

var _ input.ReimbursementUseCase = (*ReimbursementService)(nil)

// ReimbursementService handles expense claims. Any member submits; finance
// decides. A claim is decided once: pending -> approved or pending -> rejected.
type ReimbursementService struct {
	repo      output.ReimbursementRepository
	eventRepo output.EventRepository
	notifier  notifier
	now       Clock
}

// NewReimbursementService creates a ReimbursementService. eventRepo is used to
// check relatedEventId and may be nil; notifications may be nil.
func NewReimbursementService(repo output.ReimbursementRepository, eventRepo output.EventRepository, notifications *NotificationService) *ReimbursementService {
	s := &ReimbursementService{repo: repo, eventRepo: eventRepo, now: time.Now}
	if notifications != nil {
		s.notifier = notifications
	}
	return s
}

func (s *ReimbursementService) SubmitReimbursement(ctx context.Context, actor *entities.User, in input.ReimbursementInput) (*entities.Reimbursement, error) {
	if actor == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.ReceiptImage != "" {
		if err := checkReceipt(in.ReceiptImage); err != nil {
			return nil, err
		}
	}
	if in.RelatedEventID != "" && s.eventRepo != nil {
		if _, err := s.eventRepo.FindByID(ctx, in.RelatedEventID); err != nil {
			return nil, err
		}
	}
	now := s.now()
	r := &entities.Reimbursement{
		ID:             uuid.NewString(),
		Amount:         in.Amount,
		Description:    in.Description,
		RelatedEventID: in.RelatedEventID,
		ReceiptImage:   in.ReceiptImage,
		SubmittedBy:    actor.Name,
		Status:         domain.ReimbursementPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reimbursement: %w", err)
	}
	return r, nil
}

func (s *ReimbursementService) ApproveReimbursement(ctx context.Context, actor *entities.User, id, comment string) (*entities.Reimbursement, error) {
	if err := checkFinance(actor); err != nil {
		return nil, err
	}
	r, err := s.decide(ctx, id, domain.ReimbursementApproved, comment)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, domain.NotificationApproved, "notification.reimbursement_approved", map[string]any{
			"Amount":      fmt.Sprintf("%.2f", r.Amount),
			"Description": r.Description,
		}, r.ID)
	}
	return r, nil
}

// RejectReimbursement requires a comment explaining the rejection.
func (s *ReimbursementService) RejectReimbursement(ctx context.Context, actor *entities.User, id, comment string) (*entities.Reimbursement, error) {
	if err := checkFinance(actor); err != nil {
		return nil, err
	}
	if comment == "" {
		return nil, domain.NewValidationError("approverComment is required")
	}
	return s.decide(ctx, id, domain.ReimbursementRejected, comment)
}

func (s *ReimbursementService) decide(ctx context.Context, id string, status domain.ReimbursementStatus, comment string) (*entities.Reimbursement, error) {
	return s.repo.Modify(ctx, id, func(r *entities.Reimbursement) error {
		if !r.IsPending() {
			return domain.ErrReimbursementClosed
		}
		r.Status = status
		r.ApproverComment = comment
		r.UpdatedAt = s.now()
		return nil
	})
}

func (s *ReimbursementService) DeleteReimbursement(ctx context.Context, actor *entities.User, id string) error {
	if err := checkFinance(actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ReimbursementService) GetReimbursements(ctx context.Context) ([]entities.Reimbursement, error) {
	return s.repo.FindAll(ctx)
}

func (s *ReimbursementService) GetPendingReimbursements(ctx context.Context) ([]entities.Reimbursement, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	out := make([]entities.Reimbursement, 0, len(all))
	for _, r := range all {
		if r.IsPending() {
			out = append(out, r)
		}
	}
	return out, nil
}
