// Package clock supplies the service's notion of "now" and the civil
// timestamp handling that goes with it.  All times in this application are
// interpreted in KST, a fixed UTC+9 zone; the upstream data was written by a
// service that pinned the offset rather than the tz database entry, so a
// fixed zone reproduces it exactly and keeps tests independent of tzdata.
package clock

import (
	"strings"
	"time"
)

// KST is the fixed civil timezone of the service (UTC+9, no DST).
var KST = time.FixedZone("KST", 9*60*60)

// Layout is the canonical storage layout for civil timestamps.
const Layout = "2006-01-02 15:04:05"

// Clock abstracts the current time so the active-window filter and the
// timestamp-assignment points can be driven with fixed instants in tests.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the wall clock, expressed in KST.
type System struct{}

// Now returns the current wall-clock time in KST.
func (System) Now() time.Time { return time.Now().In(KST) }

// Fixed is a Clock pinned to a single instant.  Used in tests.
type Fixed struct{ T time.Time }

// Now returns the pinned instant.
func (f Fixed) Now() time.Time { return f.T }

// layouts are the accepted civil timestamp shapes, most common first.  The
// stored form is the first entry; the rest tolerate what older records and
// HTML datetime-local inputs produce.
var layouts = []string{
	Layout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"20060102",
}

// Parse interprets s as a civil timestamp in KST.  Offset-qualified inputs
// (RFC 3339) are accepted and converted into KST.  The boolean reports
// whether any accepted layout matched.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(KST), true
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, KST); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders t in the canonical storage layout, in KST.
func Format(t time.Time) string {
	return t.In(KST).Format(Layout)
}
