// Package event holds the domain logic for open-space events: validated
// construction, the active-window filter and the display formatting that
// the listing and map endpoints share.
package event

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oseyo/open-space-listing/internal/clock"
	"github.com/oseyo/open-space-listing/internal/repository"
)

// ErrValidation marks malformed or missing input at the creation boundary.
// Handlers translate it into an HTTP 400 with the wrapped message.
var ErrValidation = errors.New("validation")

// titleMaxRunes is the visible length an event title is cut to at creation.
// Truncation is one-way: only the shortened form is ever stored.
const titleMaxRunes = 30

// ellipsis is appended to a truncated title.
const ellipsis = "…"

// Capacity bounds when a head-count limit is enabled.
const (
	capacityMin = 1
	capacityMax = 10
)

// NewInput carries the raw creation fields after HTTP binding.  Start and
// End are civil timestamp strings as submitted; Photo is the already-encoded
// blob (empty when the upload was missing or could not be encoded).
type NewInput struct {
	Title           string
	Photo           string
	Start           string
	End             string
	Address         string
	AddressDetail   string
	Lat             float64
	Lng             float64
	CapacityEnabled bool
	CapacityMax     int
}

// New validates in and builds a storable event.  It assigns the id, trims
// and truncates the title, normalizes both window timestamps to the
// canonical stored layout, enforces end > start, clamps the capacity and
// stamps CreatedAt with now.  All failures wrap ErrValidation.
func New(in NewInput, now clock.Clock) (*repository.Event, error) {
	title := TruncateTitle(strings.TrimSpace(in.Title))
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	start, ok := clock.Parse(in.Start)
	if !ok {
		return nil, fmt.Errorf("%w: invalid start time", ErrValidation)
	}
	end, ok := clock.Parse(in.End)
	if !ok {
		return nil, fmt.Errorf("%w: invalid end time", ErrValidation)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrValidation)
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}
	e := &repository.Event{
		ID:              newID(),
		Title:           title,
		Photo:           in.Photo,
		StartAt:         clock.Format(start),
		EndAt:           clock.Format(end),
		Address:         address,
		AddressDetail:   strings.TrimSpace(in.AddressDetail),
		Lat:             in.Lat,
		Lng:             in.Lng,
		CapacityEnabled: in.CapacityEnabled,
		CreatedAt:       clock.Format(now.Now()),
	}
	if in.CapacityEnabled {
		n := ClampCapacity(in.CapacityMax)
		e.CapacityMax = &n
	}
	return e, nil
}

// TruncateTitle cuts s to the visible rune limit, marking the cut with an
// ellipsis.  Titles at or under the limit pass through unchanged.
func TruncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleMaxRunes {
		return s
	}
	return string(runes[:titleMaxRunes]) + ellipsis
}

// ClampCapacity forces n into the allowed head-count range.
func ClampCapacity(n int) int {
	if n < capacityMin {
		return capacityMin
	}
	if n > capacityMax {
		return capacityMax
	}
	return n
}

// newID produces the 32-char hex form used for event ids.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
