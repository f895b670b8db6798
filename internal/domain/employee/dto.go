package employee

import (
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Position       string  `json:"position"`
	BranchID       string  `json:"branch_id"`
	WorkScheduleID *string `json:"work_schedule_id"`
	HireDate       string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name"`
	Position         *string `json:"position"`
	BranchID         *string `json:"branch_id"`
	WorkScheduleID   *string `json:"work_schedule_id"`
	EmploymentStatus *string `json:"employment_status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, EmploymentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: active, resigned, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Position         string  `json:"position"`
	BranchID         string  `json:"branch_id"`
	BranchName       *string `json:"branch_name,omitempty"`
	WorkScheduleID   *string `json:"work_schedule_id,omitempty"`
	WorkScheduleName *string `json:"work_schedule_name,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	HireDate         string  `json:"hire_date"`
}

type EmployeeFilter struct {
	Name     *string
	BranchID *string
	Status   *string
	Page     int
	Limit    int
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
