package branch

import "context"

type BranchRepository interface {
	Create(ctx context.Context, branch Branch) (Branch, error)
	GetByID(ctx context.Context, id string) (Branch, error)
	List(ctx context.Context) ([]Branch, error)

	// GetTimezoneByEmployeeID resolves the IANA timezone of the branch an
	// employee belongs to.
	GetTimezoneByEmployeeID(ctx context.Context, employeeID string) (string, error)
}
