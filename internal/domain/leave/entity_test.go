package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCovers(t *testing.T) {
	request := LeaveRequest{
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, request.Covers(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, request.Covers(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, request.Covers(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, request.Covers(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, request.Covers(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestCoversIgnoresZoneAndClock(t *testing.T) {
	jakarta, _ := time.LoadLocation("Asia/Jakarta")
	request := LeaveRequest{
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	// 23:30 local on the covered day, which is already March 3 in UTC
	assert.True(t, request.Covers(time.Date(2026, 3, 2, 23, 30, 0, 0, jakarta)))
}

func TestSubmitLeaveRequestValidate(t *testing.T) {
	valid := SubmitLeaveRequest{
		Type:      "annual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Note:      "family matters",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "vacation"
	assert.Error(t, badType.Validate())

	reversed := valid
	reversed.StartDate = "2026-03-04"
	reversed.EndDate = "2026-03-02"
	assert.Error(t, reversed.Validate())

	noNote := valid
	noNote.Note = "  "
	assert.Error(t, noNote.Validate())
}
