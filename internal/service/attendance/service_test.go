package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	record  *attendance.Attendance
	created *attendance.Attendance
	updated *attendance.Attendance
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return s.record, nil
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	s.created = &att
	return att, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	s.updated = &att
	return nil
}

type stubScheduleRepo struct {
	schedule.WorkScheduleRepository
	ws schedule.WorkSchedule
}

func (s *stubScheduleRepo) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	return s.ws, nil
}

type stubBranchRepo struct {
	branch.BranchRepository
	timezone string
}

func (s *stubBranchRepo) GetTimezoneByEmployeeID(ctx context.Context, employeeID string) (string, error) {
	return s.timezone, nil
}

type stubLeaveRepo struct {
	leave.LeaveRequestRepository
}

func (s *stubLeaveRepo) GetApprovedCovering(ctx context.Context, employeeID string, day time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// A WFO schedule fenced at HQ, covering every weekday so the test does not
// depend on when it runs. No clock bounds: the time window always passes.
func geofencedSchedule() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		ID:   "ws-1",
		Type: schedule.WorkArrangementWFO,
		Details: []schedule.ScheduleDetail{{
			WorkDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			WorkType: schedule.WorkArrangementWFO,
			Location: &schedule.Location{
				Name:         "HQ",
				Latitude:     -6.2,
				Longitude:    106.816666,
				RadiusMeters: 100,
			},
		}},
	}
}

func openSessionRecord() *attendance.Attendance {
	in := time.Now().UTC().Add(-8 * time.Hour)
	return &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		ClockIn:    &in,
		Status:     attendance.StatusOnTime,
	}
}

func TestClockOutRejectsOutsideGeofence(t *testing.T) {
	repo := &stubAttendanceRepo{record: openSessionRecord()}
	svc := NewAttendanceService(repo,
		&stubScheduleRepo{ws: geofencedSchedule()},
		&stubBranchRepo{timezone: "Asia/Jakarta"},
		&stubLeaveRepo{})

	// Roughly 120km from HQ.
	_, err := svc.ClockOut(authedContext(t), attendance.ClockOutRequest{
		Latitude:  floatPtr(-6.914744),
		Longitude: floatPtr(107.609810),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
	assert.Nil(t, repo.updated, "rejected clock-out must not be persisted")
}

func TestClockOutRejectsMissingCoordinateOnGeofencedSchedule(t *testing.T) {
	repo := &stubAttendanceRepo{record: openSessionRecord()}
	svc := NewAttendanceService(repo,
		&stubScheduleRepo{ws: geofencedSchedule()},
		&stubBranchRepo{timezone: "Asia/Jakarta"},
		&stubLeaveRepo{})

	_, err := svc.ClockOut(authedContext(t), attendance.ClockOutRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrLocationRequired)
	assert.Nil(t, repo.updated)
}

func TestClockOutWithinGeofence(t *testing.T) {
	repo := &stubAttendanceRepo{record: openSessionRecord()}
	svc := NewAttendanceService(repo,
		&stubScheduleRepo{ws: geofencedSchedule()},
		&stubBranchRepo{timezone: "Asia/Jakarta"},
		&stubLeaveRepo{})

	// About 11m from HQ.
	resp, err := svc.ClockOut(authedContext(t), attendance.ClockOutRequest{
		Latitude:  floatPtr(-6.2001),
		Longitude: floatPtr(106.8167),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.NotNil(t, repo.updated.ClockOut)
	assert.NotNil(t, repo.updated.WorkHours)
	assert.Equal(t, string(attendance.StatusOnTime), resp.Status)
}

func TestClockInRejectsWhenMarkedAbsent(t *testing.T) {
	repo := &stubAttendanceRepo{record: &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Status:     attendance.StatusAbsent,
	}}
	svc := NewAttendanceService(repo,
		&stubScheduleRepo{ws: geofencedSchedule()},
		&stubBranchRepo{timezone: "Asia/Jakarta"},
		&stubLeaveRepo{})

	_, err := svc.ClockIn(authedContext(t), attendance.ClockInRequest{
		Latitude:  floatPtr(-6.2001),
		Longitude: floatPtr(106.8167),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrMarkedAbsent)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	assert.Nil(t, repo.created)
}
