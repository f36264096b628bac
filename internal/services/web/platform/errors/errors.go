// Package errors classifies portal request failures so handlers can map them
// to HTTP responses without string matching.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies a failure.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
)

var kindStatus = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
}

// Error is a classified failure with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err == nil {
		return msg
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return msg + ": " + e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

// E returns an Error of kind with message and no cause.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Wrap returns an Error of kind with message around cause.
func Wrap(kind Kind, message string, cause error) error {
	return Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the kind of the outermost Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var classified Error
	if stderrors.As(err, &classified) && classified.Kind != "" {
		return classified.Kind
	}
	return KindUnknown
}

// HTTPStatus maps err to a response status. A nil error is 200 and any
// unclassified error is 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := kindStatus[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
