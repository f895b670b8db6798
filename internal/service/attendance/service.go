package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/claims"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	schedule.WorkScheduleRepository
	branch.BranchRepository
	leaveRepo leave.LeaveRequestRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	branchRepo branch.BranchRepository,
	leaveRepo leave.LeaveRequestRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepo,
		WorkScheduleRepository: scheduleRepo,
		BranchRepository:       branchRepo,
		leaveRepo:              leaveRepo,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	loc, err := a.employeeLocation(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := nowUTC.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	covering, err := a.leaveRepo.GetApprovedCovering(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check approved leaves: %w", err)
	}

	state := BuildDayState(existing, len(covering) > 0)
	if !state.CanClockIn() {
		if state.OnApprovedLeave {
			return attendance.AttendanceResponse{}, attendance.ErrOnLeaveToday
		}
		if state.Record != nil && state.Record.Status == attendance.StatusAbsent {
			// Backfilled absent row; "already clocked in" would be a lie.
			return attendance.AttendanceResponse{}, attendance.ErrMarkedAbsent
		}
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusOnTime

	detail, bypass, err := a.resolveTodayDetail(ctx, employeeID, nowLocal.Weekday())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !bypass {
		status, err = decideClockIn(nowUTC, today, detail, loc)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		if detail != nil {
			if err := validateGeofence(req.Latitude, req.Longitude, detail.Location); err != nil {
				return attendance.AttendanceResponse{}, err
			}
		}
	}

	record := attendance.Attendance{
		EmployeeID:       employeeID,
		Date:             today,
		ClockIn:          &nowUTC,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		Status:           status,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		// A concurrent duplicate surfaces here as ErrAlreadyRecorded; the
		// first writer's row stands and this submission is rejected.
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Employee clocked in",
		"employee_id", employeeID,
		"date", today.Format("2006-01-02"),
		"status", status)

	return toAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	loc, err := a.employeeLocation(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := nowUTC.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	state := BuildDayState(existing, false)
	if state.OnApprovedLeave {
		return attendance.AttendanceResponse{}, attendance.ErrOnLeaveToday
	}
	if !state.HasClockedIn {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if state.HasClockedOut {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	status := existing.Status

	detail, bypass, err := a.resolveTodayDetail(ctx, employeeID, nowLocal.Weekday())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !bypass {
		status, err = decideClockOut(nowUTC, today, existing.Status, detail, loc)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		if detail != nil {
			if err := validateGeofence(req.Latitude, req.Longitude, detail.Location); err != nil {
				return attendance.AttendanceResponse{}, err
			}
		}
	}

	workHours := decimal.NewFromFloat(nowUTC.Sub(*existing.ClockIn).Hours()).Round(2)

	record := *existing
	record.ClockOut = &nowUTC
	record.ClockOutLatitude = req.Latitude
	record.ClockOutLongitude = req.Longitude
	record.WorkHours = &workHours
	record.Status = status

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Employee clocked out",
		"employee_id", employeeID,
		"date", today.Format("2006-01-02"),
		"status", status,
		"work_hours", workHours.String())

	return toAttendanceResponse(record), nil
}

// GetMyAttendanceToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendanceToday(ctx context.Context) (attendance.TodayAttendanceResponse, error) {
	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return attendance.TodayAttendanceResponse{}, err
	}

	loc, err := a.employeeLocation(ctx, employeeID)
	if err != nil {
		return attendance.TodayAttendanceResponse{}, err
	}

	nowLocal := time.Now().UTC().In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayAttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	covering, err := a.leaveRepo.GetApprovedCovering(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayAttendanceResponse{}, fmt.Errorf("failed to check approved leaves: %w", err)
	}

	state := BuildDayState(record, len(covering) > 0)

	resp := attendance.TodayAttendanceResponse{
		Date:          today.Format("2006-01-02"),
		HasClockedIn:  state.HasClockedIn,
		HasClockedOut: state.HasClockedOut,
		CanClockOut:   state.CanClockOut,
		OnLeave:       state.OnApprovedLeave,
	}
	if record != nil {
		r := toAttendanceResponse(*record)
		resp.Attendance = &r
	}

	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	normalizeFilter(&filter)

	records, total, err := a.AttendanceRepository.GetByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return toListResponse(records, total, filter), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	normalizeFilter(&filter)

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return toListResponse(records, total, filter), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

// employeeLocation resolves the employee's branch timezone. An unknown or
// unloadable timezone falls back to UTC rather than blocking attendance.
func (a *AttendanceServiceImpl) employeeLocation(ctx context.Context, employeeID string) (*time.Location, error) {
	timezone, err := a.BranchRepository.GetTimezoneByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			slog.Warn("Employee has no branch; falling back to UTC", "employee_id", employeeID)
			return time.UTC, nil
		}
		return nil, fmt.Errorf("failed to resolve employee timezone: %w", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Warn("Invalid branch timezone; falling back to UTC",
			"employee_id", employeeID, "timezone", timezone)
		return time.UTC, nil
	}

	return loc, nil
}

// resolveTodayDetail loads the employee's schedule and resolves today's
// detail. No assigned schedule or no detail for this weekday is permissive:
// time and location checks are skipped, the gap is logged for HR to fix.
func (a *AttendanceServiceImpl) resolveTodayDetail(ctx context.Context, employeeID string, weekday time.Weekday) (*schedule.ScheduleDetail, bool, error) {
	ws, err := a.WorkScheduleRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			slog.Warn("Employee has no work schedule; skipping time and location checks",
				"employee_id", employeeID)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get work schedule: %w", err)
	}

	if ws.BypassesChecks() {
		return nil, true, nil
	}

	detail, ok := ws.ResolveDetail(weekday)
	if !ok {
		slog.Warn("No schedule detail for today; skipping time and location checks",
			"employee_id", employeeID,
			"work_schedule_id", ws.ID,
			"weekday", weekday.String())
		return nil, false, nil
	}

	return detail, false, nil
}

func normalizeFilter(filter *attendance.AttendanceFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      att.EmployeeName,
		EmployeePosition:  att.EmployeePosition,
		Date:              att.Date.Format("2006-01-02"),
		ClockInTime:       timePtrToString(att.ClockIn),
		ClockOutTime:      timePtrToString(att.ClockOut),
		ClockInLatitude:   att.ClockInLatitude,
		ClockInLongitude:  att.ClockInLongitude,
		ClockOutLatitude:  att.ClockOutLatitude,
		ClockOutLongitude: att.ClockOutLongitude,
		Status:            string(att.Status),
	}
	if att.WorkHours != nil {
		s := att.WorkHours.StringFixed(2)
		resp.WorkHours = &s
	}
	return resp
}

func toListResponse(records []attendance.Attendance, total int64, filter attendance.AttendanceFilter) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toAttendanceResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
