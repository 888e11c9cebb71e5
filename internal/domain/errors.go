package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable error category surfaced to API clients.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "invalid_request"
	KindNotFound       ErrorKind = "not_found"
	KindConflict       ErrorKind = "conflict"
	KindInternal       ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewInvalidRequest(msg string) error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func NewNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NewInternal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf classifies an error; anything outside the taxonomy is internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
