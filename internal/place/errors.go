// Package place wraps the external Kakao Local keyword search and turns its
// raw documents into typed place candidates.  Every failure mode a caller
// must distinguish is a distinct error value or type, so the handler can map
// each one onto its own response without string matching.
package place

import (
	"errors"
	"fmt"
)

// ErrQueryRequired is returned for a blank query, before any external call.
var ErrQueryRequired = errors.New("query required")

// ErrConfigMissing is returned when the Kakao REST key is not configured.
// No external call is attempted.
var ErrConfigMissing = errors.New("place search credentials missing")

// ErrRateLimited is returned when the upstream explicitly signaled overload.
// Callers surface it as "try again later" and never retry automatically.
var ErrRateLimited = errors.New("place search rate limited")

// ErrNoResults distinguishes "the search ran and produced zero valid
// candidates" from a success with an empty list.
var ErrNoResults = errors.New("no results")

// RequestFailedError reports a non-success upstream status other than rate
// limiting, keeping the status for the caller's message.
type RequestFailedError struct {
	Status int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("place search request failed: status %d", e.Status)
}

// TransportError reports a network-level failure reaching the upstream,
// carrying the underlying cause.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("place search transport error: %v", e.Cause)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *TransportError) Unwrap() error { return e.Cause }
