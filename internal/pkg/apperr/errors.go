// Package apperr holds the sentinel errors shared by services, repositories and handlers.
// Callers wrap them with fmt.Errorf("...: %w", err) and the REST layer maps them to status codes.
package apperr

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned for malformed or out-of-domain input (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when the caller is not authenticated (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller lacks the required role (HTTP 403).
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned on uniqueness or stock conflicts (HTTP 409).
	ErrConflict = errors.New("conflict")
)

// NotFound wraps ErrNotFound with the entity name and key.
func NotFound(entity, key string) error {
	return &wrapped{msg: entity + " " + key + " not found", err: ErrNotFound}
}

// Validation wraps ErrValidation with a caller facing message.
func Validation(msg string) error {
	return &wrapped{msg: msg, err: ErrValidation}
}

// Conflict wraps ErrConflict with a caller facing message.
func Conflict(msg string) error {
	return &wrapped{msg: msg, err: ErrConflict}
}

type wrapped struct {
	msg string
	err error
}

func (w *wrapped) Error() string { return w.msg }

func (w *wrapped) Unwrap() error { return w.err }
