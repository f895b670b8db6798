package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testDetail() *schedule.ScheduleDetail {
	// All clocks in UTC: window 00:00-11:00, deadline 01:00, checkout from 10:00.
	// In Jakarta (UTC+7) that is 07:00-18:00, deadline 08:00, checkout 17:00.
	return &schedule.ScheduleDetail{
		WorkDays:      []string{"monday"},
		CheckInStart:  strPtr("00:00"),
		CheckInEnd:    strPtr("01:00"),
		CheckOutStart: strPtr("10:00"),
		CheckOutEnd:   strPtr("11:00"),
		WorkType:      schedule.WorkArrangementWFO,
	}
}

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

func TestDecideClockInOnTime(t *testing.T) {
	loc := jakarta(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	status, err := decideClockIn(time.Date(2026, 3, 2, 7, 59, 0, 0, loc), day, testDetail(), loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, status)

	// Exactly on the deadline is still on time
	status, err = decideClockIn(time.Date(2026, 3, 2, 8, 0, 0, 0, loc), day, testDetail(), loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, status)
}

func TestDecideClockInLate(t *testing.T) {
	loc := jakarta(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	status, err := decideClockIn(time.Date(2026, 3, 2, 8, 1, 0, 0, loc), day, testDetail(), loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, status)
}

func TestDecideClockInOutsideWindow(t *testing.T) {
	loc := jakarta(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	_, err := decideClockIn(time.Date(2026, 3, 2, 6, 59, 0, 0, loc), day, testDetail(), loc)
	assert.ErrorIs(t, err, attendance.ErrOutsideClockInWindow)

	_, err = decideClockIn(time.Date(2026, 3, 2, 18, 1, 0, 0, loc), day, testDetail(), loc)
	assert.ErrorIs(t, err, attendance.ErrOutsideClockInWindow)
}

func TestDecideClockInNoDetailIsPermissive(t *testing.T) {
	loc := jakarta(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	status, err := decideClockIn(time.Date(2026, 3, 2, 3, 0, 0, 0, loc), day, nil, loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, status)
}

func TestDecideClockOutEarlyLeave(t *testing.T) {
	loc := jakarta(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	status, err := decideClockOut(time.Date(2026, 3, 2, 16, 59, 0, 0, loc), day, attendance.StatusOnTime, testDetail(), loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusEarlyLeave, status)
}

func TestDecideClockOutKeepsClockInStatus(t *testing.T) {
	loc := jakarta(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	status, err := decideClockOut(time.Date(2026, 3, 2, 17, 0, 0, 0, loc), day, attendance.StatusLate, testDetail(), loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, status)

	status, err = decideClockOut(time.Date(2026, 3, 2, 17, 30, 0, 0, loc), day, attendance.StatusOnTime, nil, loc)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, status)
}

func TestValidateGeofenceInside(t *testing.T) {
	location := &schedule.Location{
		Name:         "HQ",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	}

	assert.NoError(t, validateGeofence(floatPtr(-6.2001), floatPtr(106.8), location))
}

func TestValidateGeofenceOutside(t *testing.T) {
	location := &schedule.Location{
		Name:         "HQ",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	}

	err := validateGeofence(floatPtr(-6.20135), floatPtr(106.8), location)
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)

	var radiusErr *attendance.OutsideRadiusError
	require.True(t, errors.As(err, &radiusErr))
	assert.Equal(t, "HQ", radiusErr.LocationName)
	assert.Greater(t, radiusErr.DistanceMeters, 100)
	assert.Equal(t, 100, radiusErr.RadiusMeters)
}

func TestValidateGeofenceMissingCoordinate(t *testing.T) {
	location := &schedule.Location{Name: "HQ", Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}

	assert.ErrorIs(t, validateGeofence(nil, nil, location), attendance.ErrLocationRequired)
	assert.ErrorIs(t, validateGeofence(floatPtr(-6.2), nil, location), attendance.ErrLocationRequired)
}

func TestValidateGeofenceNoLocation(t *testing.T) {
	assert.NoError(t, validateGeofence(nil, nil, nil))
	assert.NoError(t, validateGeofence(floatPtr(-6.2), floatPtr(106.8), nil))
}
