package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// Reason classifies an AppError independently of the resource it concerns.
type Reason int

const (
	ReasonInternal Reason = iota
	ReasonNotFound
	ReasonAlreadyExists
	ReasonNotInParent
	ReasonValidation
)

// AppError is an error that knows how it should be reported to a client.
type AppError struct {
	Reason  Reason
	Code    string
	Message string
	Status  int
	Details any
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Message
}

// Is enables errors.Is matching on the reason, and on the code when the
// target carries one.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Reason != e.Reason {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinels for errors.Is matching.
var (
	ErrNotFound      = &AppError{Reason: ReasonNotFound}
	ErrAlreadyExists = &AppError{Reason: ReasonAlreadyExists}
	ErrNotInParent   = &AppError{Reason: ReasonNotInParent}
	ErrValidation    = &AppError{Reason: ReasonValidation}
)

func NotFound(kind Kind, id string) *AppError {
	return &AppError{
		Reason:  ReasonNotFound,
		Code:    kind.code("NOT_FOUND"),
		Message: fmt.Sprintf("%s with ID %s not found.", kind.Label, id),
		Status:  http.StatusNotFound,
	}
}

func AlreadyExists(kind Kind, first, second string) *AppError {
	return &AppError{
		Reason: ReasonAlreadyExists,
		Code:   kind.code("ALREADY_EXISTS"),
		Message: fmt.Sprintf(
			"%s with %s %s and %s %s already exists.",
			kind.Label, kind.KeyLabels[0], first, kind.KeyLabels[1], second,
		),
		Status: http.StatusConflict,
	}
}

// NotInParent reports a child that exists but belongs to another parent.
func NotInParent(child, parent Kind, id string) *AppError {
	return &AppError{
		Reason: ReasonNotInParent,
		Code:   child.Code + "_NOT_IN_" + parent.Parent + child.Suffix,
		Message: fmt.Sprintf(
			"%s with ID %s is not associated with this %s.",
			capitalize(child.Noun), id, parent.Noun,
		),
		Status: http.StatusForbidden,
	}
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Reason:  ReasonValidation,
		Code:    "VALIDATION_ERROR",
		Message: "Request validation failed.",
		Status:  http.StatusBadRequest,
		Details: fields,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
