package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Clock-in rejections
	ErrAlreadyClockedIn     = errors.New("you have already clocked in today")
	ErrMarkedAbsent         = errors.New("you have been marked absent for today; contact HR to correct your attendance")
	ErrOnLeaveToday         = errors.New("you are on approved leave today")
	ErrOutsideClockInWindow = errors.New("outside the allowed clock-in time window")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed location")
	ErrLocationRequired     = errors.New("your location could not be determined; location is required for on-site attendance")

	// Clock-out rejections
	ErrNotClockedIn      = errors.New("you have not clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")

	// Commit-time conflict (concurrent duplicate submission)
	ErrAlreadyRecorded = errors.New("attendance already recorded for today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutsideRadiusError carries the measured distance so the surfaced message can
// tell the user how far away they are. errors.Is matches ErrOutsideAllowedRadius.
type OutsideRadiusError struct {
	LocationName   string
	DistanceMeters int
	RadiusMeters   int
}

func (e *OutsideRadiusError) Error() string {
	return fmt.Sprintf("you are %dm away from %s; attendance is only allowed within %dm",
		e.DistanceMeters, e.LocationName, e.RadiusMeters)
}

func (e *OutsideRadiusError) Is(target error) bool {
	return target == ErrOutsideAllowedRadius
}
