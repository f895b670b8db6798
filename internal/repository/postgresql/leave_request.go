package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.type,
	lr.start_date, lr.end_date,
	lr.note, lr.attachment_url,
	lr.status, lr.reviewed_by, lr.reviewed_at, lr.admin_note,
	lr.submitted_at, lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row, req *leave.LeaveRequest) error {
	return row.Scan(
		&req.ID, &req.EmployeeID, &req.Type,
		&req.StartDate, &req.EndDate,
		&req.Note, &req.AttachmentURL,
		&req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.AdminNote,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
	)
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_date, end_date,
			note, attachment_url, status, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type, request.StartDate, request.EndDate,
		request.Note, request.AttachmentURL, request.Status,
	).Scan(&request.ID, &request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveRequestColumns + `,
			e.full_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type,
		&req.StartDate, &req.EndDate,
		&req.Note, &req.AttachmentURL,
		&req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.AdminNote,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, "lr.employee_id = "+arg(*filter.EmployeeID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "lr.status = "+arg(*filter.Status))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "lr.end_date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "lr.start_date <= "+arg(*filter.EndDate))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM leave_requests lr"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `
		SELECT` + leaveRequestColumns + `,
			e.full_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id` + where + `
		ORDER BY lr.submitted_at DESC
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type,
			&req.StartDate, &req.EndDate,
			&req.Note, &req.AttachmentURL,
			&req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.AdminNote,
			&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading leave requests: %w", err)
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. Only rows still
// waiting approval transition; anything else reports already-processed.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy string, adminNote *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			reviewed_by = $3,
			reviewed_at = NOW(),
			admin_note = $4,
			updated_at = NOW()
		WHERE id = $1 AND status = 'waiting_approval'
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy, adminNote)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)", id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check leave request: %w", err)
		}
		if !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// GetApprovedCovering implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetApprovedCovering(ctx context.Context, employeeID string, day time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND $2::date BETWEEN lr.start_date AND lr.end_date
	`

	rows, err := q.Query(ctx, query, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := scanLeaveRequest(rows, &req); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading leave requests: %w", err)
	}

	return requests, nil
}

// HasOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('waiting_approval', 'approved')
			  AND start_date <= $3::date
			  AND end_date >= $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}

	return exists, nil
}
