package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn processes an employee clock-in with time-window and geofence validation
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the open session for today
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetMyAttendanceToday returns the day state the clock screens render from
	GetMyAttendanceToday(ctx context.Context) (TodayAttendanceResponse, error)

	// GetMyAttendance lists attendance history for the authenticated employee
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance lists attendance records across employees (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID (admin)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
}
