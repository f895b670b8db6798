package master

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/master/branch"
)

type BranchServiceImpl struct {
	branch.BranchRepository
}

func NewBranchService(branchRepo branch.BranchRepository) branch.BranchService {
	return &BranchServiceImpl{
		BranchRepository: branchRepo,
	}
}

// CreateBranch implements branch.BranchService.
func (s *BranchServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	created, err := s.BranchRepository.Create(ctx, branch.Branch{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		return branch.BranchResponse{}, err
	}

	slog.Info("Branch created", "branch_id", created.ID, "name", created.Name)

	return toBranchResponse(created), nil
}

// GetBranch implements branch.BranchService.
func (s *BranchServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.BranchRepository.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return toBranchResponse(b), nil
}

// ListBranches implements branch.BranchService.
func (s *BranchServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.BranchRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, toBranchResponse(b))
	}

	return responses, nil
}

func toBranchResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:       b.ID,
		Name:     b.Name,
		Address:  b.Address,
		Timezone: b.Timezone,
	}
}
