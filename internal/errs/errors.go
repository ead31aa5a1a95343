package errs

// Error taxonomy shared by the services and the HTTP layer. Validation and
// authorization are checked before any store call; transient failures come
// back from the store wrapped as TransientError.

import "fmt"

// ValidationError reports a single offending field on a draft.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func Validation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AuthError means the caller is not allowed to perform the action. The action
// must not reach the data store once this is returned.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "not authorized: " + e.Reason
}

func Auth(reason string) *AuthError {
	return &AuthError{Reason: reason}
}

// ConflictError reports an operation that can only happen once, e.g. a second
// reply to the same review. Not retryable.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

func Conflict(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// TransientError wraps a network or store failure. Surfaced as a generic
// failure; retry policy belongs to the caller, not this layer.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient failure: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func Transient(err error) *TransientError {
	return &TransientError{Err: err}
}

// NotFoundError is returned when a review or musician does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func NotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}
