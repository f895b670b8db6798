package employee

import "time"

type Employee struct {
	ID               string
	UserID           *string
	WorkScheduleID   *string
	BranchID         string
	EmployeeCode     string
	FullName         string
	Position         string
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// DTO / Join
	BranchName       *string
	WorkScheduleName *string
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusResigned),
	string(EmploymentStatusTerminated),
}
