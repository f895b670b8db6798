package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestBuildDayStateNoRecord(t *testing.T) {
	state := BuildDayState(nil, false)

	assert.False(t, state.HasClockedIn)
	assert.False(t, state.HasClockedOut)
	assert.False(t, state.CanClockOut)
	assert.False(t, state.OnApprovedLeave)
	assert.True(t, state.CanClockIn())
}

func TestBuildDayStateOpenSession(t *testing.T) {
	now := time.Now().UTC()
	record := &attendance.Attendance{ClockIn: &now, Status: attendance.StatusOnTime}

	state := BuildDayState(record, false)

	assert.True(t, state.HasClockedIn)
	assert.False(t, state.HasClockedOut)
	assert.True(t, state.CanClockOut)
	assert.False(t, state.CanClockIn())
}

func TestBuildDayStateClosedSession(t *testing.T) {
	in := time.Now().UTC().Add(-8 * time.Hour)
	out := time.Now().UTC()
	record := &attendance.Attendance{ClockIn: &in, ClockOut: &out, Status: attendance.StatusOnTime}

	state := BuildDayState(record, false)

	assert.True(t, state.HasClockedIn)
	assert.True(t, state.HasClockedOut)
	assert.False(t, state.CanClockOut)
	assert.False(t, state.CanClockIn())
}

func TestBuildDayStateClockOutWithoutClockIn(t *testing.T) {
	out := time.Now().UTC()
	record := &attendance.Attendance{ClockOut: &out, Status: attendance.StatusAbsent}

	state := BuildDayState(record, false)

	assert.False(t, state.HasClockedIn)
	assert.False(t, state.HasClockedOut)
	assert.False(t, state.CanClockOut)
}

func TestBuildDayStateLeaveRow(t *testing.T) {
	record := &attendance.Attendance{Status: attendance.StatusLeave}

	state := BuildDayState(record, false)

	assert.True(t, state.OnApprovedLeave)
	assert.False(t, state.CanClockIn())
	assert.False(t, state.CanClockOut)
}

func TestBuildDayStateApprovedLeaveWithoutRow(t *testing.T) {
	state := BuildDayState(nil, true)

	assert.True(t, state.OnApprovedLeave)
	assert.False(t, state.CanClockIn())
}

func TestBuildDayStateAbsentRowBlocksClockIn(t *testing.T) {
	record := &attendance.Attendance{Status: attendance.StatusAbsent}

	state := BuildDayState(record, false)

	assert.False(t, state.CanClockIn())
	assert.False(t, state.CanClockOut)
}
