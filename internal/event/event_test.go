package event

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseyo/open-space-listing/internal/clock"
)

var testNow = clock.Fixed{T: time.Date(2024, 5, 1, 10, 0, 0, 0, clock.KST)}

func validInput() NewInput {
	return NewInput{
		Title:   "같이 걷기",
		Start:   "2024-05-01 09:00",
		End:     "2024-05-01 11:30",
		Address: "포항시 북구 흥해읍",
		Lat:     36.019,
		Lng:     129.343,
	}
}

func TestNew_AssignsIDAndCreatedAt(t *testing.T) {
	e, err := New(validInput(), testNow)
	require.NoError(t, err)

	assert.Len(t, e.ID, 32, "uuid hex id")
	assert.Equal(t, "2024-05-01 10:00:00", e.CreatedAt)
	assert.Equal(t, "2024-05-01 09:00:00", e.StartAt, "timestamps normalized to the stored layout")
	assert.Equal(t, "2024-05-01 11:30:00", e.EndAt)
	assert.False(t, e.Hidden)
	assert.Nil(t, e.CapacityMax)
}

func TestNew_DistinctIDs(t *testing.T) {
	a, err := New(validInput(), testNow)
	require.NoError(t, err)
	b, err := New(validInput(), testNow)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNew_RequiresTitle(t *testing.T) {
	in := validInput()
	in.Title = "  "
	_, err := New(in, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNew_RequiresEndAfterStart(t *testing.T) {
	in := validInput()
	in.Start = "2024-05-01 11:30"
	in.End = "2024-05-01 09:00"
	_, err := New(in, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	// Equal instants are rejected too: the window must have positive length.
	in.End = in.Start
	_, err = New(in, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNew_RejectsUnparsableTimes(t *testing.T) {
	in := validInput()
	in.Start = "yesterday-ish"
	_, err := New(in, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.End = ""
	_, err = New(in, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNew_RequiresAddress(t *testing.T) {
	in := validInput()
	in.Address = "   "
	_, err := New(in, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNew_TruncatesTitleAtCreation(t *testing.T) {
	in := validInput()
	in.Title = strings.Repeat("가", 40)
	e, err := New(in, testNow)
	require.NoError(t, err)
	// One-way transform: only the shortened form is stored.
	assert.Equal(t, strings.Repeat("가", 30)+"…", e.Title)
}

func TestNew_ClampsCapacity(t *testing.T) {
	in := validInput()
	in.CapacityEnabled = true
	in.CapacityMax = 99
	e, err := New(in, testNow)
	require.NoError(t, err)
	require.NotNil(t, e.CapacityMax)
	assert.Equal(t, 10, *e.CapacityMax)

	in.CapacityMax = 0
	e, err = New(in, testNow)
	require.NoError(t, err)
	require.NotNil(t, e.CapacityMax)
	assert.Equal(t, 1, *e.CapacityMax)
}

func TestNew_CapacityIgnoredWhenDisabled(t *testing.T) {
	in := validInput()
	in.CapacityEnabled = false
	in.CapacityMax = 7
	e, err := New(in, testNow)
	require.NoError(t, err)
	assert.Nil(t, e.CapacityMax)
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", TruncateTitle("short"))

	exact := strings.Repeat("a", 30)
	assert.Equal(t, exact, TruncateTitle(exact), "titles at the limit pass through")

	long := strings.Repeat("a", 31)
	assert.Equal(t, strings.Repeat("a", 30)+"…", TruncateTitle(long))

	// The limit counts runes, not bytes.
	korean := strings.Repeat("걷", 31)
	got := TruncateTitle(korean)
	assert.Equal(t, 31, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
