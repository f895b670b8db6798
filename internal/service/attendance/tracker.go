package attendance

import (
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
)

// DayState is the derived state of one employee-day. Handlers never inspect
// the raw row; every clock screen decision comes from here.
type DayState struct {
	HasClockedIn    bool
	HasClockedOut   bool
	CanClockOut     bool
	OnApprovedLeave bool
	Record          *attendance.Attendance
}

// BuildDayState derives the day state from today's attendance row (nil when
// none exists yet) and whether an approved leave covers today. A leave row
// counts as on leave even when the coverage lookup says otherwise, so a day
// already marked by leave approval stays consistent.
func BuildDayState(record *attendance.Attendance, leaveCoversToday bool) DayState {
	state := DayState{
		OnApprovedLeave: leaveCoversToday,
		Record:          record,
	}

	if record == nil {
		return state
	}

	if record.Status == attendance.StatusLeave {
		state.OnApprovedLeave = true
	}

	state.HasClockedIn = record.ClockIn != nil
	state.HasClockedOut = record.ClockIn != nil && record.ClockOut != nil
	state.CanClockOut = record.HasOpenSession() && !state.OnApprovedLeave

	return state
}

// CanClockIn reports whether a new clock-in is allowed from this state. Any
// existing row blocks it, including absent or leave rows written by backfill.
func (s DayState) CanClockIn() bool {
	return s.Record == nil && !s.OnApprovedLeave
}
