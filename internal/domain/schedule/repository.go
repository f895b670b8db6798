package schedule

import (
	"context"
)

type WorkScheduleRepository interface {
	// Create inserts the schedule with its details and locations in one transaction
	Create(ctx context.Context, workSchedule WorkSchedule) (WorkSchedule, error)

	// GetByID retrieves a schedule with details and locations attached
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// GetByEmployeeID resolves the schedule assigned to an employee
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkSchedule, error)

	List(ctx context.Context, filter WorkScheduleFilter) ([]WorkSchedule, int64, error)
	SoftDelete(ctx context.Context, id string) error
}
