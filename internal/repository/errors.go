// Package repository defines error values that are reused across the event
// and favorite repositories.  These sentinels let the handler layer
// distinguish failure scenarios without inspecting driver-specific errors.
package repository

import "errors"

// ErrPersistence wraps a rejected write.  Handlers translate this into an
// HTTP 500 response; the caller's in-memory view must not be updated when it
// is returned.
var ErrPersistence = errors.New("persistence failure")
