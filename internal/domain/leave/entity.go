package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeOther  LeaveType = "other"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypeUnpaid),
	string(LeaveTypeOther),
}

// LeaveRequest entity. The date range is inclusive at day granularity; an
// approved request whose range covers today suppresses clock-in for that day.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time

	Note          string
	AttachmentURL *string

	Status     LeaveRequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	AdminNote  *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName *string
}

// Covers reports whether the request's range contains the given day. The
// comparison is at calendar-day granularity, ignoring zones and clock times.
func (r LeaveRequest) Covers(day time.Time) bool {
	d := dateKey(day)
	return d >= dateKey(r.StartDate) && d <= dateKey(r.EndDate)
}

func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
