package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the canonical attendance status vocabulary.
type Status string

const (
	StatusOnTime     Status = "on_time"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
	StatusLeave      Status = "leave"
)

var StatusValues = []string{
	string(StatusOnTime),
	string(StatusLate),
	string(StatusEarlyLeave),
	string(StatusAbsent),
	string(StatusLeave),
}

// Attendance is one working day for one employee. At most one row exists per
// (employee_id, date); the database enforces this with a unique constraint.
type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time // calendar day in the employee's local zone
	ClockIn           *time.Time
	ClockOut          *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	WorkHours         *decimal.Decimal
	Status            Status
	LeaveRequestID    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	EmployeeName     *string
	EmployeePosition *string
}

// HasOpenSession reports whether the row is clocked in but not yet out.
func (a Attendance) HasOpenSession() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}
