package errs

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable category of an application error.
type Kind string

const (
	KindValidationFailed      Kind = "validation_failed"
	KindDuplicateEmail        Kind = "duplicate_email"
	KindDuplicateName         Kind = "duplicate_name"
	KindNotFound              Kind = "not_found"
	KindNotRemovable          Kind = "not_removable"
	KindInvalidCredentials    Kind = "invalid_credentials"
	KindInvalidState          Kind = "invalid_state"
	KindUnauthenticated       Kind = "unauthenticated"
	KindProvisioningFailed    Kind = "provisioning_failed"
	KindProvisioningCorrupted Kind = "provisioning_corrupted"
	KindStorageUnavailable    Kind = "storage_unavailable"
)

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a tagged application error. Validation errors carry every
// violated field, not just the first.
type Error struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New returns an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a tagged error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Validation returns a ValidationFailed error carrying field details.
func Validation(details []FieldError) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Validation failed", Details: details}
}

// KindOf extracts the kind from err, or KindStorageUnavailable for
// anything outside the closed set.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindStorageUnavailable
}

// AsError unwraps err to an *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
