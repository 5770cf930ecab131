package entities

import (
	"time"

	"ircportal/internal/domain"
)

// FundraisingEntry is one row of the money-raised ledger kept by finance.
type FundraisingEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Source      string    `json:"source,omitempty"`
	SubmittedBy string    `json:"submittedBy"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Reimbursement is an expense claim. ReceiptImage holds the base64 payload
// of the receipt, optionally as a data URL.
type Reimbursement struct {
	ID              string                     `json:"id"`
	Amount          float64                    `json:"amount"`
	Description     string                     `json:"description"`
	RelatedEventID  string                     `json:"relatedEventId,omitempty"`
	ReceiptImage    string                     `json:"receiptImage,omitempty"`
	SubmittedBy     string                     `json:"submittedBy"`
	Status          domain.ReimbursementStatus `json:"status"`
	ApproverComment string                     `json:"approverComment,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
}

// MeetingMinute links the shared document holding one internals meeting's notes.
type MeetingMinute struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	GoogleDocURL string    `json:"googleDocUrl"`
	SubmittedBy  string    `json:"submittedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *Reimbursement) IsPending() bool {
	return r.Status == domain.ReimbursementPending
}
