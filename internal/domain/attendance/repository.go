package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance row. A concurrent duplicate for the same
	// (employee, date) surfaces as ErrAlreadyRecorded.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns today's row, or nil when none exists yet
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, attendance Attendance) error

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	GetByEmployee(ctx context.Context, employeeID string, filter AttendanceFilter) ([]Attendance, int64, error)

	// MarkLeaveDays inserts 'leave' rows for every day of an approved leave
	// range, skipping days that already have a row.
	MarkLeaveDays(ctx context.Context, employeeID, leaveRequestID string, startDate, endDate time.Time) error

	// MarkAbsentees inserts 'absent' rows for the most recently completed day
	// in each employee's branch timezone, for employees who were scheduled
	// that day but have no attendance row and no approved leave. now is the
	// reference instant the completed day is derived from.
	MarkAbsentees(ctx context.Context, now time.Time) (int64, error)
}
