package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Submit files a new leave request for the authenticated employee
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// Approve marks a request approved and, as a side effect, records 'leave'
	// attendance rows for every covered day
	Approve(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)

	// Reject marks a request rejected with an optional admin note
	Reject(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)

	GetMyLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
}
