package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, reviewedBy string, adminNote *string) error

	// GetApprovedCovering returns approved requests whose inclusive range
	// contains the given calendar day.
	GetApprovedCovering(ctx context.Context, employeeID string, day time.Time) ([]LeaveRequest, error)

	// HasOverlapping reports whether a waiting or approved request intersects
	// the given range.
	HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
}
