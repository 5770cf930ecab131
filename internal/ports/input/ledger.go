package input

import (
	"context"

	"ircportal/internal/domain/entities"
)

type FundraisingInput struct {
	Title  string  `json:"title" validate:"required,max=200"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Source string  `json:"source" validate:"max=100"`
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Notes  string  `json:"notes" validate:"max=2000"`
}

type FundraisingPatch struct {
	Title  *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Source *string  `json:"source" validate:"omitempty,max=100"`
	Date   *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes  *string  `json:"notes" validate:"omitempty,max=2000"`
}

type FundraisingUseCase interface {
	CreateEntry(ctx context.Context, actor *entities.User, in FundraisingInput) (*entities.FundraisingEntry, error)
	UpdateEntry(ctx context.Context, actor *entities.User, id string, patch FundraisingPatch) (*entities.FundraisingEntry, error)
	DeleteEntry(ctx context.Context, actor *entities.User, id string) error
	ListEntries(ctx context.Context) ([]entities.FundraisingEntry, error)
	GetTotalMoneyRaised(ctx context.Context) (float64, error)
}

type ReimbursementInput struct {
	Amount         float64 `json:"amount" validate:"gt=0"`
	Description    string  `json:"description" validate:"required,max=2000"`
	RelatedEventID string  `json:"relatedEventId"`
	ReceiptImage   string  `json:"receiptImage"`
}

type ReimbursementUseCase interface {
	SubmitReimbursement(ctx context.Context, actor *entities.User, in ReimbursementInput) (*entities.Reimbursement, error)
	ApproveReimbursement(ctx context.Context, actor *entities.User, id, comment string) (*entities.Reimbursement, error)
	RejectReimbursement(ctx context.Context, actor *entities.User, id, comment string) (*entities.Reimbursement, error)
	DeleteReimbursement(ctx context.Context, actor *entities.User, id string) error
	GetReimbursements(ctx context.Context) ([]entities.Reimbursement, error)
	GetPendingReimbursements(ctx context.Context) ([]entities.Reimbursement, error)
}
