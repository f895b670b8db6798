package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.work_schedule_id, e.branch_id,
	e.employee_code, e.full_name, e.position,
	e.employment_status, e.hire_date,
	e.created_at, e.updated_at, e.deleted_at`

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, work_schedule_id, branch_id,
			employee_code, full_name, position,
			employment_status, hire_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID, emp.WorkScheduleID, emp.BranchID,
		emp.EmployeeCode, emp.FullName, emp.Position,
		emp.EmploymentStatus, emp.HireDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, "e.id = $1", id)
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return r.getOne(ctx, "e.user_id = $1", userID)
}

func (r *employeeRepository) getOne(ctx context.Context, condition string, arg interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `,
			b.name AS branch_name,
			ws.name AS work_schedule_name
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		LEFT JOIN work_schedules ws ON ws.id = e.work_schedule_id
		WHERE ` + condition + ` AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, arg).Scan(
		&emp.ID, &emp.UserID, &emp.WorkScheduleID, &emp.BranchID,
		&emp.EmployeeCode, &emp.FullName, &emp.Position,
		&emp.EmploymentStatus, &emp.HireDate,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.BranchName, &emp.WorkScheduleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.deleted_at IS NULL"}
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Name != nil {
		conditions = append(conditions, "e.full_name ILIKE "+arg("%"+*filter.Name+"%"))
	}
	if filter.BranchID != nil {
		conditions = append(conditions, "e.branch_id = "+arg(*filter.BranchID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "e.employment_status = "+arg(*filter.Status))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees e"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT` + employeeColumns + `,
			b.name AS branch_name,
			ws.name AS work_schedule_name
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		LEFT JOIN work_schedules ws ON ws.id = e.work_schedule_id` + where + `
		ORDER BY e.full_name
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.WorkScheduleID, &emp.BranchID,
			&emp.EmployeeCode, &emp.FullName, &emp.Position,
			&emp.EmploymentStatus, &emp.HireDate,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
			&emp.BranchName, &emp.WorkScheduleName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading employees: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if req.FullName != nil {
		sets = append(sets, "full_name = "+arg(*req.FullName))
	}
	if req.Position != nil {
		sets = append(sets, "position = "+arg(*req.Position))
	}
	if req.BranchID != nil {
		sets = append(sets, "branch_id = "+arg(*req.BranchID))
	}
	if req.WorkScheduleID != nil {
		sets = append(sets, "work_schedule_id = "+arg(*req.WorkScheduleID))
	}
	if req.EmploymentStatus != nil {
		sets = append(sets, "employment_status = "+arg(*req.EmploymentStatus))
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := "UPDATE employees SET " + strings.Join(sets, ", ") +
		" WHERE id = " + arg(req.ID) + " AND deleted_at IS NULL"

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
