// internal/apperrors/apperrors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure. Every terminal outcome of the
// generation pipeline maps to exactly one kind.
type Kind string

const (
	KindValidation          Kind = "validation_error"
	KindPurification        Kind = "purification_error"
	KindPromptConstruction  Kind = "prompt_construction_error"
	KindContentPolicy       Kind = "content_policy_violation"
	KindGenerationService   Kind = "generation_service_error"
	KindGenerationTransport Kind = "generation_transport_error"
	KindTranslationDegraded Kind = "translation_degraded"
	KindUnexpected          Kind = "unexpected_error"
)

// AppError carries a classified failure through the pipeline. Message is the
// caller-facing text; Err is the underlying cause, if any.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a classified AppError.
func New(kind Kind, message string, cause error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
}

// NewValidation reports caller-correctable bad input.
func NewValidation(message string, cause error) *AppError {
	return New(KindValidation, message, cause)
}

// NewPurification reports an unavailable purifier or degenerate output.
func NewPurification(message string, cause error) *AppError {
	return New(KindPurification, message, cause)
}

// NewContentPolicy reports a deliberate refusal by the image backend. This is
// an expected business outcome, not an exceptional one.
func NewContentPolicy(message string) *AppError {
	return New(KindContentPolicy, message, nil)
}

// NewGenerationService reports a backend that answered but produced no
// usable artifact.
func NewGenerationService(message string, cause error) *AppError {
	return New(KindGenerationService, message, cause)
}

// NewGenerationTransport reports a backend call that itself failed.
func NewGenerationTransport(message string, cause error) *AppError {
	return New(KindGenerationTransport, message, cause)
}

// NewUnexpected is the catch-all for anything not anticipated.
func NewUnexpected(message string, cause error) *AppError {
	return New(KindUnexpected, message, cause)
}

// KindOf returns the classification of err, or KindUnexpected when err is not
// an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// IsContentPolicy checks whether err is a content-policy refusal.
func IsContentPolicy(err error) bool {
	return KindOf(err) == KindContentPolicy
}

// IsValidation checks whether err is caller-correctable bad input.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
