package youtube

import (
	"errors"
	"fmt"
)

// The closed set of upstream failure kinds. Every upstream-calling component
// returns one of these sentinels, an *UnknownStatusError, a *ParseError, or a
// transport error wrapped with %w. Callers branch with errors.Is / errors.As;
// anything outside the set maps to a generic 500 at the API boundary.
var (
	ErrNotFound             = errors.New("not found")
	ErrRatelimited          = errors.New("ratelimited")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInternal             = errors.New("internal server error")
	ErrAccountClosed        = errors.New("account is closed")
	ErrAccountTerminated    = errors.New("account is terminated")
	ErrSubscriptionsPrivate = errors.New("subscriptions are private")
)

// UnknownStatusError is the catch-all for status codes outside the classifier
// table. It keeps the numeric code and a body excerpt so clients can detect
// "the upstream API surface changed" instead of misreading it as a known kind.
type UnknownStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown upstream status %d", e.StatusCode)
}

// ParseError indicates an upstream response body that could not be decoded.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
