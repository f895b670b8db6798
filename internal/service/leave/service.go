package leave

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/claims"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/presence-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/presence-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
	fileService    file.FileService
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	fileService file.FileService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		attendanceRepo:         attendanceRepo,
		fileService:            fileService,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	overlapping, err := s.LeaveRequestRepository.HasOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeaveRequest
	}

	var attachmentURL *string
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadLeaveAttachment(ctx, employeeID, req.File, req.FileHeader.Filename)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to upload attachment: %w", err)
		}
		attachmentURL = &path
	}

	request := leave.LeaveRequest{
		EmployeeID:    employeeID,
		Type:          leave.LeaveType(req.Type),
		StartDate:     startDate,
		EndDate:       endDate,
		Note:          req.Note,
		AttachmentURL: attachmentURL,
		Status:        leave.LeaveRequestStatusWaitingApproval,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		// The request row failed; don't leave the attachment orphaned.
		if attachmentURL != nil {
			if delErr := s.fileService.DeleteFile(ctx, *attachmentURL); delErr != nil {
				slog.Error("Failed to clean up leave attachment", "path", *attachmentURL, "error", delErr)
			}
		}
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("Leave request submitted",
		"leave_request_id", created.ID,
		"employee_id", employeeID,
		"type", created.Type,
		"start_date", req.StartDate,
		"end_date", req.EndDate)

	return toLeaveRequestResponse(created), nil
}

// Approve implements leave.LeaveService. Approval and the leave attendance
// rows it implies commit atomically; a failure in either rolls back both.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reviewerID, err := claims.UserID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, req.ID, leave.LeaveRequestStatusApproved, reviewerID, req.AdminNote); err != nil {
			return err
		}

		return s.attendanceRepo.MarkLeaveDays(txCtx, request.EmployeeID, request.ID, request.StartDate, request.EndDate)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("Leave request approved",
		"leave_request_id", req.ID,
		"employee_id", request.EmployeeID,
		"reviewed_by", reviewerID)

	updated, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(updated), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reviewerID, err := claims.UserID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatusRejected, reviewerID, req.AdminNote); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("Leave request rejected", "leave_request_id", req.ID, "reviewed_by", reviewerID)

	updated, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(updated), nil
}

// GetMyLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return s.list(ctx, filter)
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	return s.list(ctx, filter)
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(request), nil
}

func (s *LeaveServiceImpl) list(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toLeaveRequestResponse(request))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}, nil
}

func toLeaveRequestResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Type:          string(r.Type),
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		Note:          r.Note,
		AttachmentURL: r.AttachmentURL,
		Status:        string(r.Status),
		AdminNote:     r.AdminNote,
		SubmittedAt:   r.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}
