package event

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseyo/open-space-listing/internal/clock"
	"github.com/oseyo/open-space-listing/internal/repository"
)

// mkEvent builds a stored event with the given id and window.
func mkEvent(id, start, end string) repository.Event {
	return repository.Event{
		ID:      id,
		Title:   "모임 " + id,
		StartAt: start,
		EndAt:   end,
		Address: "어딘가",
		Lat:     36.0,
		Lng:     129.3,
	}
}

func TestActiveAt_WindowContainsNow(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	events := []repository.Event{
		mkEvent("running", "2024-05-01 09:00:00", "2024-05-01 11:00:00"),
		mkEvent("upcoming", "2024-05-01 10:00:01", "2024-05-01 12:00:00"),
		mkEvent("over", "2024-05-01 08:00:00", "2024-05-01 09:59:59"),
	}
	active := ActiveAt(events, now, nil)
	require.Len(t, active, 1)
	assert.Equal(t, "running", active[0].ID)
}

func TestActiveAt_ClosedIntervalBoundaries(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	events := []repository.Event{
		mkEvent("starts-now", "2024-05-01 10:00:00", "2024-05-01 12:00:00"),
		mkEvent("ends-now", "2024-05-01 08:00:00", "2024-05-01 10:00:00"),
	}
	active := ActiveAt(events, now, nil)
	// Both boundary instants are inclusive.
	require.Len(t, active, 2)
}

func TestActiveAt_DegenerateSingleInstantWindow(t *testing.T) {
	// end > start is enforced at creation, but a corrupted row with
	// start == end still behaves as the single instant.
	e := mkEvent("instant", "2024-05-01 10:00:00", "2024-05-01 10:00:00")

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	assert.Len(t, ActiveAt([]repository.Event{e}, at, nil), 1)

	after := at.Add(time.Second)
	assert.Empty(t, ActiveAt([]repository.Event{e}, after, nil))
}

func TestActiveAt_ExcludesHidden(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	hidden := mkEvent("hidden", "2024-05-01 09:00:00", "2024-05-01 11:00:00")
	hidden.Hidden = true
	active := ActiveAt([]repository.Event{hidden}, now, nil)
	assert.Empty(t, active)
}

func TestActiveAt_MalformedTimestampsExcludedWithWarning(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	events := []repository.Event{
		mkEvent("bad-start", "garbage", "2024-05-01 11:00:00"),
		mkEvent("bad-end", "2024-05-01 09:00:00", ""),
		mkEvent("good", "2024-05-01 09:00:00", "2024-05-01 11:00:00"),
	}

	var warnings []string
	warnf := func(format string, v ...any) {
		warnings = append(warnings, fmt.Sprintf(format, v...))
	}

	active := ActiveAt(events, now, warnf)
	require.Len(t, active, 1)
	assert.Equal(t, "good", active[0].ID)

	// Silent exclusion from the listing, but never from the logs.
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "bad-start")
	assert.Contains(t, warnings[1], "bad-end")
}

func TestActiveAt_PreservesOrderAndInput(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	events := []repository.Event{
		mkEvent("c", "2024-05-01 09:00:00", "2024-05-01 11:00:00"),
		mkEvent("b", "2024-05-01 01:00:00", "2024-05-01 02:00:00"), // inactive
		mkEvent("a", "2024-05-01 08:00:00", "2024-05-01 12:00:00"),
	}
	active := ActiveAt(events, now, nil)
	require.Len(t, active, 2)
	assert.Equal(t, "c", active[0].ID)
	assert.Equal(t, "a", active[1].ID)

	// The input slice is untouched.
	assert.Equal(t, "c", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "a", events[2].ID)
}

func TestActiveAt_EmptyInput(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)
	active := ActiveAt(nil, now, nil)
	assert.NotNil(t, active)
	assert.Empty(t, active)
}
