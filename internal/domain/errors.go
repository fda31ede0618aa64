package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports malformed input.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

// AuthorizationError reports an actor that may not perform the action.
type AuthorizationError struct {
	Message string
}

func NewAuthorizationError(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

func (e *AuthorizationError) Error() string { return e.Message }

// InvalidStateError reports a proposal whose current status forbids the transition.
type InvalidStateError struct {
	Action  string
	Current ProposalStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("proposal cannot be %s in its current state: %s", e.Action, e.Current)
}

// InsufficientBalanceError reports a student balance lower than the requested hours.
type InsufficientBalanceError struct {
	Balance decimal.Decimal
	Hours   decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("student does not have enough time balance. Current balance: %s, required hours: %s",
		e.Balance.String(), e.Hours.String())
}

// NotFoundError reports a referenced document that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}
