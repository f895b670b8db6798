package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDetail(t *testing.T) {
	ws := WorkSchedule{
		Type: WorkArrangementWFO,
		Details: []ScheduleDetail{
			{ID: "weekdays", WorkDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"}},
			{ID: "weekend", WorkDays: []string{"saturday"}},
		},
	}

	detail, ok := ws.ResolveDetail(time.Monday)
	require.True(t, ok)
	assert.Equal(t, "weekdays", detail.ID)

	detail, ok = ws.ResolveDetail(time.Saturday)
	require.True(t, ok)
	assert.Equal(t, "weekend", detail.ID)

	_, ok = ws.ResolveDetail(time.Sunday)
	assert.False(t, ok)
}

func TestResolveDetailCaseInsensitive(t *testing.T) {
	ws := WorkSchedule{
		Details: []ScheduleDetail{
			{ID: "d1", WorkDays: []string{"Monday"}},
		},
	}

	detail, ok := ws.ResolveDetail(time.Monday)
	require.True(t, ok)
	assert.Equal(t, "d1", detail.ID)
}

func TestResolveDetailEmptySchedule(t *testing.T) {
	var ws WorkSchedule
	_, ok := ws.ResolveDetail(time.Wednesday)
	assert.False(t, ok)
}

func TestBypassesChecks(t *testing.T) {
	assert.True(t, WorkSchedule{Type: WorkArrangementWFA}.BypassesChecks())
	assert.False(t, WorkSchedule{Type: WorkArrangementWFO}.BypassesChecks())
	assert.False(t, WorkSchedule{Type: WorkArrangementWFH}.BypassesChecks())
}

func TestCreateWorkScheduleRequestValidate(t *testing.T) {
	valid := CreateWorkScheduleRequest{
		Name: "Head Office",
		Type: "WFO",
		Details: []ScheduleDetailRequest{
			{
				WorkDays:     []string{"monday", "tuesday"},
				CheckInStart: strPtr("00:00"),
				CheckInEnd:   strPtr("01:00"),
				WorkType:     "WFO",
				Location: &LocationRequest{
					Name:         "HQ",
					Latitude:     -6.2,
					Longitude:    106.8,
					RadiusMeters: 100,
				},
			},
		},
	}
	assert.NoError(t, valid.Validate())

	missingLocation := valid
	missingLocation.Details = []ScheduleDetailRequest{
		{WorkDays: []string{"monday"}, WorkType: "WFO"},
	}
	assert.Error(t, missingLocation.Validate())

	duplicateDay := valid
	duplicateDay.Details = []ScheduleDetailRequest{
		{WorkDays: []string{"monday"}, WorkType: "WFH"},
		{WorkDays: []string{"Monday"}, WorkType: "WFH"},
	}
	assert.Error(t, duplicateDay.Validate())

	badClock := valid
	badClock.Details = []ScheduleDetailRequest{
		{WorkDays: []string{"monday"}, WorkType: "WFH", CheckInStart: strPtr("27:00")},
	}
	assert.Error(t, badClock.Validate())

	badRadius := valid
	badRadius.Details = []ScheduleDetailRequest{
		{
			WorkDays: []string{"monday"},
			WorkType: "WFO",
			Location: &LocationRequest{Name: "HQ", Latitude: 0, Longitude: 0, RadiusMeters: 0},
		},
	}
	assert.Error(t, badRadius.Validate())
}

func strPtr(s string) *string { return &s }
