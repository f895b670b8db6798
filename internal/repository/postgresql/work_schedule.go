package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// Create implements schedule.WorkScheduleRepository. The schedule, its details,
// and their locations are inserted in one transaction.
func (r *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		err := q.QueryRow(ctx, `
			INSERT INTO work_schedules (name, type)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`, ws.Name, ws.Type).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return schedule.ErrWorkScheduleNameExists
			}
			return fmt.Errorf("failed to create work schedule: %w", err)
		}

		for i := range ws.Details {
			detail := &ws.Details[i]
			detail.WorkScheduleID = ws.ID

			err := q.QueryRow(ctx, `
				INSERT INTO schedule_details (
					work_schedule_id, work_days,
					check_in_start, check_in_end,
					break_start, break_end,
					check_out_start, check_out_end,
					work_type
				) VALUES ($1, $2, $3::time, $4::time, $5::time, $6::time, $7::time, $8::time, $9)
				RETURNING id, created_at, updated_at
			`,
				detail.WorkScheduleID, detail.WorkDays,
				detail.CheckInStart, detail.CheckInEnd,
				detail.BreakStart, detail.BreakEnd,
				detail.CheckOutStart, detail.CheckOutEnd,
				detail.WorkType,
			).Scan(&detail.ID, &detail.CreatedAt, &detail.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to create schedule detail: %w", err)
			}

			if detail.Location != nil {
				loc := detail.Location
				loc.ScheduleDetailID = detail.ID

				err := q.QueryRow(ctx, `
					INSERT INTO work_locations (
						schedule_detail_id, name, latitude, longitude, radius_meters
					) VALUES ($1, $2, $3, $4, $5)
					RETURNING id, created_at, updated_at
				`,
					loc.ScheduleDetailID, loc.Name, loc.Latitude, loc.Longitude, loc.RadiusMeters,
				).Scan(&loc.ID, &loc.CreatedAt, &loc.UpdatedAt)
				if err != nil {
					return fmt.Errorf("failed to create work location: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, `
		SELECT id, name, type, created_at, updated_at
		FROM work_schedules
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&ws.ID, &ws.Name, &ws.Type, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	details, err := r.loadDetails(ctx, ws.ID)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Details = details

	return ws, nil
}

// GetByEmployeeID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, `
		SELECT ws.id, ws.name, ws.type, ws.created_at, ws.updated_at
		FROM work_schedules ws
		JOIN employees e ON e.work_schedule_id = ws.id
		WHERE e.id = $1 AND ws.deleted_at IS NULL
	`, employeeID).Scan(&ws.ID, &ws.Name, &ws.Type, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule by employee: %w", err)
	}

	details, err := r.loadDetails(ctx, ws.ID)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Details = details

	return ws, nil
}

func (r *workScheduleRepository) loadDetails(ctx context.Context, workScheduleID string) ([]schedule.ScheduleDetail, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT
			sd.id, sd.work_schedule_id, sd.work_days,
			to_char(sd.check_in_start, 'HH24:MI'), to_char(sd.check_in_end, 'HH24:MI'),
			to_char(sd.break_start, 'HH24:MI'), to_char(sd.break_end, 'HH24:MI'),
			to_char(sd.check_out_start, 'HH24:MI'), to_char(sd.check_out_end, 'HH24:MI'),
			sd.work_type, sd.created_at, sd.updated_at,
			wl.id, wl.name, wl.latitude, wl.longitude, wl.radius_meters
		FROM schedule_details sd
		LEFT JOIN work_locations wl ON wl.schedule_detail_id = sd.id
		WHERE sd.work_schedule_id = $1
		ORDER BY sd.created_at
	`, workScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule details: %w", err)
	}
	defer rows.Close()

	var details []schedule.ScheduleDetail
	for rows.Next() {
		var detail schedule.ScheduleDetail
		var locID, locName *string
		var locLat, locLon *float64
		var locRadius *int

		err := rows.Scan(
			&detail.ID, &detail.WorkScheduleID, &detail.WorkDays,
			&detail.CheckInStart, &detail.CheckInEnd,
			&detail.BreakStart, &detail.BreakEnd,
			&detail.CheckOutStart, &detail.CheckOutEnd,
			&detail.WorkType, &detail.CreatedAt, &detail.UpdatedAt,
			&locID, &locName, &locLat, &locLon, &locRadius,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule detail: %w", err)
		}

		if locID != nil {
			detail.Location = &schedule.Location{
				ID:               *locID,
				ScheduleDetailID: detail.ID,
				Name:             *locName,
				Latitude:         *locLat,
				Longitude:        *locLon,
				RadiusMeters:     *locRadius,
			}
		}

		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading schedule details: %w", err)
	}

	return details, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.WorkSchedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Name != nil {
		conditions = append(conditions, "name ILIKE "+arg("%"+*filter.Name+"%"))
	}
	if filter.Type != nil {
		conditions = append(conditions, "type = "+arg(*filter.Type))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM work_schedules"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work schedules: %w", err)
	}

	query := `
		SELECT id, name, type, created_at, updated_at
		FROM work_schedules` + where + `
		ORDER BY name
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Type, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading work schedules: %w", err)
	}

	for i := range schedules {
		details, err := r.loadDetails(ctx, schedules[i].ID)
		if err != nil {
			return nil, 0, err
		}
		schedules[i].Details = details
	}

	return schedules, total, nil
}

// SoftDelete implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE work_schedules
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}

	return nil
}
