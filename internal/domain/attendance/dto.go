package attendance

import (
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

// ClockInRequest carries the device coordinate for a clock-in submission.
// Latitude/Longitude are pointers: a nil pair means the device could not
// provide a fix, which blocks geofenced schedules but not WFA.
type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *ClockInRequest) Validate() error {
	return validateCoordinate(r.Latitude, r.Longitude)
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *ClockOutRequest) Validate() error {
	return validateCoordinate(r.Latitude, r.Longitude)
}

func validateCoordinate(lat, lon *float64) error {
	var errs validator.ValidationErrors

	if (lat == nil) != (lon == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lon != nil && !validator.IsValidLongitude(*lon) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	EmployeePosition  *string  `json:"employee_position,omitempty"`
	Date              string   `json:"date"`
	ClockInTime       *string  `json:"clock_in_time,omitempty"`
	ClockOutTime      *string  `json:"clock_out_time,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	WorkHours         *string  `json:"work_hours,omitempty"`
	Status            string   `json:"status"`
}

// TodayAttendanceResponse is the state the clock screens render from.
type TodayAttendanceResponse struct {
	Date          string              `json:"date"`
	HasClockedIn  bool                `json:"has_clocked_in"`
	HasClockedOut bool                `json:"has_clocked_out"`
	CanClockOut   bool                `json:"can_clock_out"`
	OnLeave       bool                `json:"on_leave"`
	Attendance    *AttendanceResponse `json:"attendance,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID   *string
	EmployeeName *string
	Date         *string
	StartDate    *string
	EndDate      *string
	Status       *string
	Page         int
	Limit        int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, date := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if date != nil {
			if _, ok := validator.IsValidDate(*date); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: on_time, late, early_leave, absent, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
