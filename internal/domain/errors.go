package domain

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrValidation               = errors.New("validation failed")
	ErrEventNotFound            = errors.New("event not found")
	ErrChecklistItemNotFound    = errors.New("checklist item not found")
	ErrSocialEventNotFound      = errors.New("social event not found")
	ErrCalendarEntryNotFound    = errors.New("calendar entry not found")
	ErrTaskNotFound             = errors.New("task not found")
	ErrFundraisingEntryNotFound = errors.New("fundraising entry not found")
	ErrReimbursementNotFound    = errors.New("reimbursement not found")
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrMeetingMinuteNotFound    = errors.New("meeting minutes not found")
	ErrChecklistIncomplete      = errors.New("required checklist items are not completed")
	ErrInvalidTransition        = errors.New("status transition not allowed")
	ErrForbidden                = errors.New("action not allowed for this role")
	ErrReimbursementClosed      = errors.New("reimbursement already processed")
	ErrNotAuthenticated         = errors.New("not logged in")
)

var codes = map[error]string{
	ErrInvalidCredentials:       "invalid_credentials",
	ErrValidation:               "validation",
	ErrEventNotFound:            "event_not_found",
	ErrChecklistItemNotFound:    "checklist_item_not_found",
	ErrSocialEventNotFound:      "social_event_not_found",
	ErrCalendarEntryNotFound:    "calendar_entry_not_found",
	ErrTaskNotFound:             "task_not_found",
	ErrFundraisingEntryNotFound: "fundraising_entry_not_found",
	ErrReimbursementNotFound:    "reimbursement_not_found",
	ErrNotificationNotFound:     "notification_not_found",
	ErrMeetingMinuteNotFound:    "meeting_minute_not_found",
	ErrChecklistIncomplete:      "checklist_incomplete",
	ErrInvalidTransition:        "invalid_transition",
	ErrForbidden:                "forbidden",
	ErrReimbursementClosed:      "reimbursement_closed",
	ErrNotAuthenticated:         "not_authenticated",
}

// Code returns the stable code of the domain error wrapped in err, or "" when
// err carries no domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for target, code := range codes {
		if errors.Is(err, target) {
			return code
		}
	}
	return ""
}

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return strings.HasSuffix(Code(err), "_not_found")
}

// ValidationError lists the fields that failed validation. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
