package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/geo"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/timewindow"
)

// decideClockIn validates a clock-in instant against the day's schedule detail
// and returns the status to record. A nil detail means no configuration for
// this weekday: the clock-in passes as on time.
func decideClockIn(now, day time.Time, detail *schedule.ScheduleDetail, loc *time.Location) (attendance.Status, error) {
	if detail == nil {
		return attendance.StatusOnTime, nil
	}

	within, err := timewindow.WithinClockInWindow(now, day, detail.CheckInStart, detail.CheckOutEnd, loc)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate clock-in window: %w", err)
	}
	if !within {
		return "", attendance.ErrOutsideClockInWindow
	}

	late, err := timewindow.IsLate(now, day, detail.CheckInEnd, loc)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate check-in deadline: %w", err)
	}
	if late {
		return attendance.StatusLate, nil
	}

	return attendance.StatusOnTime, nil
}

// decideClockOut returns the status a clock-out at now leaves the row with.
// Leaving strictly before the scheduled checkout start downgrades the day to
// early leave; otherwise the clock-in status stands.
func decideClockOut(now, day time.Time, current attendance.Status, detail *schedule.ScheduleDetail, loc *time.Location) (attendance.Status, error) {
	if detail == nil {
		return current, nil
	}

	early, err := timewindow.IsEarlyLeave(now, day, detail.CheckOutStart, loc)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate checkout start: %w", err)
	}
	if early {
		return attendance.StatusEarlyLeave, nil
	}

	return current, nil
}

// validateGeofence enforces the radius check for a geofenced schedule detail.
// A detail without a location is not geofenced and always passes. A missing
// device coordinate on a geofenced detail is a rejection, not a pass.
func validateGeofence(lat, lon *float64, location *schedule.Location) error {
	if location == nil {
		return nil
	}

	if lat == nil || lon == nil {
		return attendance.ErrLocationRequired
	}

	check := geo.CheckRadius(*lat, *lon, location.Latitude, location.Longitude, location.RadiusMeters)
	if !check.WithinRadius {
		return &attendance.OutsideRadiusError{
			LocationName:   location.Name,
			DistanceMeters: check.DistanceMeters,
			RadiusMeters:   location.RadiusMeters,
		}
	}

	return nil
}
