package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("boom"), ""},
		{ErrEventNotFound, "event_not_found"},
		{fmt.Errorf("update task: %w", ErrTaskNotFound), "task_not_found"},
		{fmt.Errorf("%w: todo -> done", ErrInvalidTransition), "invalid_transition"},
		{NewValidationError("title is required"), "validation"},
		{fmt.Errorf("create: %w", NewValidationError()), "validation"},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	for _, err := range []error{ErrEventNotFound, ErrChecklistItemNotFound, fmt.Errorf("x: %w", ErrNotificationNotFound)} {
		if !IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = false, want true", err)
		}
	}
	for _, err := range []error{nil, ErrForbidden, NewValidationError("id is required")} {
		if IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = true, want false", err)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title is required", "amount must be greater than 0")
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError does not match ErrValidation")
	}
	if errors.Is(err, ErrForbidden) {
		t.Error("ValidationError matches ErrForbidden")
	}
	want := "validation failed: title is required, amount must be greater than 0"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := NewValidationError().Error(); got != "validation failed" {
		t.Errorf("empty Error() = %q", got)
	}

	var verr *ValidationError
	if !errors.As(fmt.Errorf("wrap: %w", err), &verr) || len(verr.Fields) != 2 {
		t.Errorf("errors.As = %+v", verr)
	}
}
