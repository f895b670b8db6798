package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.clock_in, a.clock_out,
	a.clock_in_latitude, a.clock_in_longitude,
	a.clock_out_latitude, a.clock_out_longitude,
	a.work_hours, a.status, a.leave_request_id,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.ClockIn, &att.ClockOut,
		&att.ClockInLatitude, &att.ClockInLongitude,
		&att.ClockOutLatitude, &att.ClockOutLongitude,
		&att.WorkHours, &att.Status, &att.LeaveRequestID,
		&att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository. A unique-constraint hit on
// (employee_id, date) means a concurrent duplicate submission and maps to
// ErrAlreadyRecorded.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, clock_in,
			clock_in_latitude, clock_in_longitude,
			status, leave_request_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.ClockIn,
		newAttendance.ClockInLatitude,
		newAttendance.ClockInLongitude,
		newAttendance.Status,
		newAttendance.LeaveRequestID,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyRecorded
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no attendance for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			e.full_name AS employee_name,
			e.position AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.ClockIn, &att.ClockOut,
		&att.ClockInLatitude, &att.ClockInLongitude,
		&att.ClockOutLatitude, &att.ClockOutLongitude,
		&att.WorkHours, &att.Status, &att.LeaveRequestID,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeePosition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $2,
			clock_out_latitude = $3,
			clock_out_longitude = $4,
			work_hours = $5,
			status = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockOut,
		att.ClockOutLatitude,
		att.ClockOutLongitude,
		att.WorkHours,
		att.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return r.list(ctx, filter, nil)
}

// GetByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return r.list(ctx, filter, &employeeID)
}

func (r *attendanceRepository) list(ctx context.Context, filter attendance.AttendanceFilter, employeeID *string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if employeeID != nil {
		conditions = append(conditions, "a.employee_id = "+arg(*employeeID))
	} else if filter.EmployeeID != nil {
		conditions = append(conditions, "a.employee_id = "+arg(*filter.EmployeeID))
	}
	if filter.EmployeeName != nil {
		conditions = append(conditions, "e.full_name ILIKE "+arg("%"+*filter.EmployeeName+"%"))
	}
	if filter.Date != nil {
		conditions = append(conditions, "a.date = "+arg(*filter.Date))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "a.date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "a.date <= "+arg(*filter.EndDate))
	}
	if filter.Status != nil {
		conditions = append(conditions, "a.status = "+arg(*filter.Status))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT` + attendanceColumns + `,
			e.full_name AS employee_name,
			e.position AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id` + where + `
		ORDER BY a.date DESC, a.clock_in DESC NULLS LAST
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.ClockIn, &att.ClockOut,
			&att.ClockInLatitude, &att.ClockInLongitude,
			&att.ClockOutLatitude, &att.ClockOutLongitude,
			&att.WorkHours, &att.Status, &att.LeaveRequestID,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeePosition,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading attendance rows: %w", err)
	}

	return attendances, total, nil
}

// MarkLeaveDays implements attendance.AttendanceRepository. Days that already
// carry an attendance row are left untouched.
func (r *attendanceRepository) MarkLeaveDays(ctx context.Context, employeeID, leaveRequestID string, startDate, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, leave_request_id)
		SELECT $1, d::date, 'leave', $2
		FROM generate_series($3::date, $4::date, interval '1 day') AS d
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, employeeID, leaveRequestID, startDate, endDate); err != nil {
		return fmt.Errorf("failed to mark leave days: %w", err)
	}

	return nil
}

// MarkAbsentees implements attendance.AttendanceRepository. The completed day
// is computed per employee in the branch's timezone, so a day is only marked
// after its local midnight has passed; a branch west of UTC is never marked
// for a day still in progress. An employee counts as absent when a schedule
// detail covers the local weekday and no attendance row or approved leave
// exists for that day.
func (r *attendanceRepository) MarkAbsentees(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		SELECT t.id, t.local_day, 'absent'
		FROM (
			SELECT e.id, e.work_schedule_id,
				((($1::timestamptz) AT TIME ZONE COALESCE(b.timezone, 'UTC'))::date - 1) AS local_day
			FROM employees e
			LEFT JOIN branches b ON b.id = e.branch_id
			WHERE e.employment_status = 'active'
			  AND e.deleted_at IS NULL
		) t
		JOIN work_schedules ws ON ws.id = t.work_schedule_id AND ws.deleted_at IS NULL
		JOIN schedule_details sd ON sd.work_schedule_id = ws.id
		  AND trim(to_char(t.local_day, 'day')) = ANY(sd.work_days)
		WHERE NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = t.id AND a.date = t.local_day
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM leave_requests lr
			WHERE lr.employee_id = t.id
			  AND lr.status = 'approved'
			  AND t.local_day BETWEEN lr.start_date AND lr.end_date
		  )
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return tag.RowsAffected(), nil
}
