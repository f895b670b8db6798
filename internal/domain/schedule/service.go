package schedule

import (
	"context"
)

// ScheduleService defines business logic for work schedule administration
type ScheduleService interface {
	CreateWorkSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	GetWorkSchedule(ctx context.Context, id string) (WorkScheduleResponse, error)
	ListWorkSchedules(ctx context.Context, filter WorkScheduleFilter) (ListWorkScheduleResponse, error)
	DeleteWorkSchedule(ctx context.Context, id string) error

	// GetMyScheduleToday resolves the authenticated employee's detail for the
	// current local day, for the clock-in/out screens.
	GetMyScheduleToday(ctx context.Context) (TodayScheduleResponse, error)
}
