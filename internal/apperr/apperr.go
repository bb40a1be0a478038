package apperr

import (
  "errors"
  "net/http"
)

// Kind is the closed set of failure categories the service layer may return.
// Handlers translate a Kind into an HTTP status exactly once, at the boundary.
type Kind int

const (
  KindInternal Kind = iota
  KindValidation
  KindUnauthenticated
  KindForbidden
  KindNotFound
  KindUpstream
)

type Error struct {
  Kind    Kind
  Message string
  // Details carries the failing provider's or store's own message, when there
  // is one worth surfacing to the client.
  Details string
}

func (e *Error) Error() string {
  if e.Details != "" {
    return e.Message + ": " + e.Details
  }
  return e.Message
}

func newError(kind Kind, msg string, details []string) *Error {
  e := &Error{Kind: kind, Message: msg}
  if len(details) > 0 {
    e.Details = details[0]
  }
  return e
}

func Validation(msg string, details ...string) *Error {
  return newError(KindValidation, msg, details)
}

func Unauthenticated(msg string, details ...string) *Error {
  return newError(KindUnauthenticated, msg, details)
}

func Forbidden(msg string, details ...string) *Error {
  return newError(KindForbidden, msg, details)
}

func NotFound(msg string, details ...string) *Error {
  return newError(KindNotFound, msg, details)
}

func Upstream(msg string, details ...string) *Error {
  return newError(KindUpstream, msg, details)
}

func Internal(msg string, details ...string) *Error {
  return newError(KindInternal, msg, details)
}

// KindOf reports the Kind of err, defaulting to KindInternal for anything that
// is not an *Error.
func KindOf(err error) Kind {
  var e *Error
  if errors.As(err, &e) {
    return e.Kind
  }
  return KindInternal
}

// Status maps err onto the HTTP status the client should see.
func Status(err error) int {
  switch KindOf(err) {
  case KindValidation:
    return http.StatusBadRequest
  case KindUnauthenticated:
    return http.StatusUnauthorized
  case KindForbidden:
    return http.StatusForbidden
  case KindNotFound:
    return http.StatusNotFound
  case KindUpstream:
    return http.StatusBadGateway
  default:
    return http.StatusInternalServerError
  }
}

// Message returns the client-facing message for err.
func Message(err error) string {
  var e *Error
  if errors.As(err, &e) {
    return e.Message
  }
  return "internal server error"
}

// DetailsOf returns the provider detail string, if any.
func DetailsOf(err error) string {
  var e *Error
  if errors.As(err, &e) {
    return e.Details
  }
  return ""
}
