package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills absent rows for the last completed day in
// each branch's timezone: employees who were scheduled to work but never
// clocked in and have no approved leave. The day boundary is per branch, so
// each run only touches branches whose local midnight has already passed;
// re-running is a no-op for days already marked.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	marked, err := j.attendanceRepo.MarkAbsentees(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}

	if marked > 0 {
		slog.Info("Cron: Marked absent employees", "count", marked)
	}
	return nil
}
