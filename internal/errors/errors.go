package errors

import "fmt"

// Stable machine codes for validation failures.
const (
	CodeInvalidItem           = "INVALID_ITEM"
	CodeInvalidQuantity       = "INVALID_QUANTITY"
	CodeEmptyCart             = "EMPTY_CART"
	CodeInvalidDeliveryMode   = "INVALID_DELIVERY_MODE"
	CodeAddressRequired       = "ADDRESS_REQUIRED"
	CodeAddressUnresolved     = "ADDRESS_UNRESOLVED"
	CodePaymentMethodRequired = "PAYMENT_METHOD_REQUIRED"
	CodeAuthRequired          = "AUTH_REQUIRED"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is always recoverable locally and surfaced to the caller
// synchronously, never logged as a fault.
type ValidationError struct {
	Code    string
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code, message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func IsForbiddenError(err error) (*ForbiddenError, bool) {
	if fe, ok := err.(*ForbiddenError); ok {
		return fe, true
	}
	return nil, false
}

// CollaboratorError wraps a failure from an external collaborator (geocoding,
// payment, identity). Checkout is aborted and the cart left untouched.
type CollaboratorError struct {
	Collaborator string
	Message      string
	Cause        error
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Collaborator, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Collaborator, e.Message)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}

func NewCollaboratorError(collaborator, message string, cause error) *CollaboratorError {
	return &CollaboratorError{
		Collaborator: collaborator,
		Message:      message,
		Cause:        cause,
	}
}

func IsCollaboratorError(err error) (*CollaboratorError, bool) {
	if ce, ok := err.(*CollaboratorError); ok {
		return ce, true
	}
	return nil, false
}

// OrderCreationError indicates a precondition was violated despite passing
// validation, e.g. the cart emptied concurrently mid-submit. Fatal to that
// submission attempt only; nothing partial is ever observable.
type OrderCreationError struct {
	Message string
}

func (e *OrderCreationError) Error() string {
	return e.Message
}

func NewOrderCreationError(message string) *OrderCreationError {
	return &OrderCreationError{Message: message}
}

func IsOrderCreationError(err error) (*OrderCreationError, bool) {
	if oe, ok := err.(*OrderCreationError); ok {
		return oe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
