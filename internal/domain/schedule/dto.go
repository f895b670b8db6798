package schedule

import (
	"strings"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type LocationRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

type ScheduleDetailRequest struct {
	WorkDays      []string         `json:"work_days"`
	CheckInStart  *string          `json:"check_in_start"`
	CheckInEnd    *string          `json:"check_in_end"`
	BreakStart    *string          `json:"break_start"`
	BreakEnd      *string          `json:"break_end"`
	CheckOutStart *string          `json:"check_out_start"`
	CheckOutEnd   *string          `json:"check_out_end"`
	WorkType      string           `json:"work_type"`
	Location      *LocationRequest `json:"location"`
}

type CreateWorkScheduleRequest struct {
	Name    string                  `json:"name"`
	Type    string                  `json:"type"`
	Details []ScheduleDetailRequest `json:"details"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Type, WorkArrangementValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: WFO, WFH, WFA",
		})
	}

	if len(r.Details) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "details",
			Message: "at least one schedule detail is required",
		})
	}

	seenDays := map[string]bool{}
	for i, detail := range r.Details {
		prefix := "details[" + validator.Itoa(i) + "]"

		if len(detail.WorkDays) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".work_days",
				Message: "work_days is required",
			})
		}
		for _, day := range detail.WorkDays {
			normalized := strings.ToLower(day)
			if !validator.IsValidWeekday(normalized) {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".work_days",
					Message: "invalid weekday: " + day,
				})
				continue
			}
			if seenDays[normalized] {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".work_days",
					Message: "weekday assigned to more than one detail: " + normalized,
				})
			}
			seenDays[normalized] = true
		}

		for field, clock := range map[string]*string{
			prefix + ".check_in_start":  detail.CheckInStart,
			prefix + ".check_in_end":    detail.CheckInEnd,
			prefix + ".break_start":     detail.BreakStart,
			prefix + ".break_end":       detail.BreakEnd,
			prefix + ".check_out_start": detail.CheckOutStart,
			prefix + ".check_out_end":   detail.CheckOutEnd,
		} {
			if clock != nil && !validator.IsValidClock(*clock) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be a UTC time of day in HH:MM format",
				})
			}
		}

		if !validator.IsInSlice(detail.WorkType, WorkArrangementValues) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".work_type",
				Message: "work_type must be one of: WFO, WFH, WFA",
			})
		}

		if detail.WorkType == string(WorkArrangementWFO) && detail.Location == nil {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".location",
				Message: "on-site details require a location",
			})
		}

		if detail.Location != nil {
			if validator.IsEmpty(detail.Location.Name) {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".location.name",
					Message: "location name is required",
				})
			}
			if !validator.IsValidLatitude(detail.Location.Latitude) {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".location.latitude",
					Message: "latitude must be between -90 and 90",
				})
			}
			if !validator.IsValidLongitude(detail.Location.Longitude) {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".location.longitude",
					Message: "longitude must be between -180 and 180",
				})
			}
			if detail.Location.RadiusMeters <= 0 {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + ".location.radius_meters",
					Message: "radius_meters must be greater than zero",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LocationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

type ScheduleDetailResponse struct {
	ID            string            `json:"id"`
	WorkDays      []string          `json:"work_days"`
	CheckInStart  *string           `json:"check_in_start,omitempty"`
	CheckInEnd    *string           `json:"check_in_end,omitempty"`
	BreakStart    *string           `json:"break_start,omitempty"`
	BreakEnd      *string           `json:"break_end,omitempty"`
	CheckOutStart *string           `json:"check_out_start,omitempty"`
	CheckOutEnd   *string           `json:"check_out_end,omitempty"`
	WorkType      string            `json:"work_type"`
	Location      *LocationResponse `json:"location,omitempty"`
}

type WorkScheduleResponse struct {
	ID      string                   `json:"id"`
	Name    string                   `json:"name"`
	Type    string                   `json:"type"`
	Details []ScheduleDetailResponse `json:"details"`
}

// TodayScheduleResponse is the resolved detail for the clock-in/out screens.
type TodayScheduleResponse struct {
	WorkScheduleID   string                  `json:"work_schedule_id"`
	WorkScheduleName string                  `json:"work_schedule_name"`
	Type             string                  `json:"type"`
	Scheduled        bool                    `json:"scheduled"`
	Detail           *ScheduleDetailResponse `json:"detail,omitempty"`
}

type WorkScheduleFilter struct {
	Name  *string
	Type  *string
	Page  int
	Limit int
}

type ListWorkScheduleResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Schedules  []WorkScheduleResponse `json:"schedules"`
}
