package event

import (
	"time"

	"github.com/oseyo/open-space-listing/internal/clock"
	"github.com/oseyo/open-space-listing/internal/repository"
)

// ActiveAt returns the subset of events whose window contains now.  The
// interval is closed on both ends: an event starting or ending exactly at
// now is still active.  Hidden events are excluded.  Events whose start or
// end fails to parse are excluded as well rather than surfaced as errors —
// a corrupt legacy row must not take the listing down — but each one is
// reported through warnf so the corruption stays visible in the logs.
// warnf may be nil.  The input slice is never mutated; the result is a new
// slice preserving the input (creation-descending) order.
func ActiveAt(events []repository.Event, now time.Time, warnf func(format string, v ...any)) []repository.Event {
	active := []repository.Event{}
	for _, e := range events {
		if e.Hidden {
			continue
		}
		start, ok := clock.Parse(e.StartAt)
		if !ok {
			if warnf != nil {
				warnf("event %s: unparsable start %q, excluded from listing", e.ID, e.StartAt)
			}
			continue
		}
		end, ok := clock.Parse(e.EndAt)
		if !ok {
			if warnf != nil {
				warnf("event %s: unparsable end %q, excluded from listing", e.ID, e.EndAt)
			}
			continue
		}
		if now.Before(start) || now.After(end) {
			continue
		}
		active = append(active, e)
	}
	return active
}
