package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func jakartaDay(t *testing.T) (time.Time, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return time.Date(2026, 3, 2, 0, 0, 0, 0, loc), loc
}

func TestAtConvertsUTCClockToLocal(t *testing.T) {
	day, loc := jakartaDay(t)

	// 01:00 UTC is 08:00 in Jakarta (UTC+7)
	at, err := At(day, "01:00", loc)
	require.NoError(t, err)
	assert.Equal(t, 8, at.Hour())
	assert.Equal(t, 0, at.Minute())
}

func TestAtRejectsMalformedClock(t *testing.T) {
	day, loc := jakartaDay(t)

	for _, clock := range []string{"", "25:00", "08:61", "8", "08:00:61", "ab:cd"} {
		_, err := At(day, clock, loc)
		assert.Error(t, err, "clock %q should be rejected", clock)
	}
}

func TestWithinClockInWindow(t *testing.T) {
	day, loc := jakartaDay(t)

	// Window 00:00-11:00 UTC, i.e. 07:00-18:00 local
	start := strPtr("00:00")
	end := strPtr("11:00")

	inside := time.Date(2026, 3, 2, 7, 30, 0, 0, loc)
	within, err := WithinClockInWindow(inside, day, start, end, loc)
	require.NoError(t, err)
	assert.True(t, within)

	before := time.Date(2026, 3, 2, 6, 59, 0, 0, loc)
	within, err = WithinClockInWindow(before, day, start, end, loc)
	require.NoError(t, err)
	assert.False(t, within)

	after := time.Date(2026, 3, 2, 18, 1, 0, 0, loc)
	within, err = WithinClockInWindow(after, day, start, end, loc)
	require.NoError(t, err)
	assert.False(t, within)

	// Boundary instants are inside
	within, err = WithinClockInWindow(time.Date(2026, 3, 2, 18, 0, 0, 0, loc), day, start, end, loc)
	require.NoError(t, err)
	assert.True(t, within)
}

func TestWithinClockInWindowNilBoundsPass(t *testing.T) {
	day, loc := jakartaDay(t)

	within, err := WithinClockInWindow(time.Date(2026, 3, 2, 3, 0, 0, 0, loc), day, nil, nil, loc)
	require.NoError(t, err)
	assert.True(t, within)
}

func TestIsLate(t *testing.T) {
	day, loc := jakartaDay(t)

	// Deadline 01:00 UTC = 08:00 local
	deadline := strPtr("01:00")

	late, err := IsLate(time.Date(2026, 3, 2, 7, 59, 0, 0, loc), day, deadline, loc)
	require.NoError(t, err)
	assert.False(t, late)

	// Exactly on the deadline is still on time
	late, err = IsLate(time.Date(2026, 3, 2, 8, 0, 0, 0, loc), day, deadline, loc)
	require.NoError(t, err)
	assert.False(t, late)

	late, err = IsLate(time.Date(2026, 3, 2, 8, 1, 0, 0, loc), day, deadline, loc)
	require.NoError(t, err)
	assert.True(t, late)

	late, err = IsLate(time.Date(2026, 3, 2, 23, 0, 0, 0, loc), day, nil, loc)
	require.NoError(t, err)
	assert.False(t, late)
}

func TestIsEarlyLeave(t *testing.T) {
	day, loc := jakartaDay(t)

	// Checkout starts 10:00 UTC = 17:00 local
	checkoutStart := strPtr("10:00")

	early, err := IsEarlyLeave(time.Date(2026, 3, 2, 16, 59, 0, 0, loc), day, checkoutStart, loc)
	require.NoError(t, err)
	assert.True(t, early)

	// Exactly at checkout start is not early
	early, err = IsEarlyLeave(time.Date(2026, 3, 2, 17, 0, 0, 0, loc), day, checkoutStart, loc)
	require.NoError(t, err)
	assert.False(t, early)

	early, err = IsEarlyLeave(time.Date(2026, 3, 2, 12, 0, 0, 0, loc), day, nil, loc)
	require.NoError(t, err)
	assert.False(t, early)
}
