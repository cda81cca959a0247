package event

import (
	"fmt"
	"time"

	"github.com/oseyo/open-space-listing/internal/clock"
)

// periodPlaceholder is returned when either end of a window cannot be
// parsed.  Formatting is display-only, so it degrades instead of failing.
const periodPlaceholder = "-"

// FormatPeriod renders a start/end window as a compact human string.  A
// window contained in one calendar day collapses to a single date:
//
//	05/01 09:00–11:30
//	05/01 23:00–05/02 01:00
//
// Unparsable input yields the "-" placeholder.
func FormatPeriod(start, end string) string {
	s, ok := clock.Parse(start)
	if !ok {
		return periodPlaceholder
	}
	e, ok := clock.Parse(end)
	if !ok {
		return periodPlaceholder
	}
	if sameDate(s, e) {
		return s.Format("01/02 15:04") + "–" + e.Format("15:04")
	}
	return s.Format("01/02 15:04") + "–" + e.Format("01/02 15:04")
}

// Remaining renders how much of the window is left at now, in the service's
// display language: "남음 N일/시간/분" while running, "종료됨" once over.
// Unparsable ends yield an empty string so the caller can omit the badge.
func Remaining(end string, now time.Time) string {
	e, ok := clock.Parse(end)
	if !ok {
		return ""
	}
	if e.Before(now) {
		return "종료됨"
	}
	mins := int(e.Sub(now).Minutes())
	switch {
	case mins > 24*60:
		return fmt.Sprintf("남음 %d일", mins/(24*60))
	case mins > 60:
		return fmt.Sprintf("남음 %d시간", mins/60)
	default:
		return fmt.Sprintf("남음 %d분", mins)
	}
}

// sameDate reports whether both instants fall on the same civil date.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
