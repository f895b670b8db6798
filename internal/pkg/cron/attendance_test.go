package cron

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	calls int
	now   time.Time
}

func (s *stubAttendanceRepo) MarkAbsentees(ctx context.Context, now time.Time) (int64, error) {
	s.calls++
	s.now = now
	return 0, nil
}

func TestMarkAbsentEmployeesRunsEveryInvocation(t *testing.T) {
	repo := &stubAttendanceRepo{}
	jobs := NewAttendanceJobs(repo)

	// The repository derives the completed day per branch timezone, so the
	// job must fire on every tick, whatever the UTC hour is.
	before := time.Now().UTC()
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Equal(t, 2, repo.calls)
	assert.False(t, repo.now.Before(before))
}

func TestRegisterJobsRunOnce(t *testing.T) {
	repo := &stubAttendanceRepo{}
	scheduler := NewScheduler()
	NewAttendanceJobs(repo).RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())

	assert.Equal(t, 1, repo.calls)
}
