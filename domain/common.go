package domain

import (
	"errors"
	"sort"
	"strings"
)

const (
	DefaultPageSize = 6

	NonFieldErrors = "non_field_errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "invalid or expired token"
	MessageFailedNotFound       = "not found"
	MessageFailedInvalidPage    = "invalid page"

	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrInvalidPage     = &Error{kind: ErrNotFound, msg: "invalid page"}
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenRevoked    = errors.New("token revoked")
	ErrTokenNotFound   = errors.New("authentication credentials were not provided")
	ErrUnauthenticated = errors.New("authentication required")
)

// Error is a domain error belonging to a class (ErrNotFound, ErrConflict) that
// handlers map to a status code.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func NotFound(msg string) *Error { return &Error{kind: ErrNotFound, msg: msg} }

func Conflict(msg string) *Error { return &Error{kind: ErrConflict, msg: msg} }

// FieldErrors maps a request field to its validation messages.
type FieldErrors map[string][]string

func NewFieldError(field, msg string) FieldErrors {
	return FieldErrors{field: {msg}}
}

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], ", "))
	}
	return strings.Join(parts, "; ")
}

// Page is a page-number paginated result set.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
