package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/claims"
)

type ScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
	branch.BranchRepository
}

func NewScheduleService(
	scheduleRepo schedule.WorkScheduleRepository,
	branchRepo branch.BranchRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		WorkScheduleRepository: scheduleRepo,
		BranchRepository:       branchRepo,
	}
}

// CreateWorkSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws := schedule.WorkSchedule{
		Name: req.Name,
		Type: schedule.WorkArrangement(req.Type),
	}

	for _, d := range req.Details {
		days := make([]string, 0, len(d.WorkDays))
		for _, day := range d.WorkDays {
			days = append(days, strings.ToLower(day))
		}

		detail := schedule.ScheduleDetail{
			WorkDays:      days,
			CheckInStart:  d.CheckInStart,
			CheckInEnd:    d.CheckInEnd,
			BreakStart:    d.BreakStart,
			BreakEnd:      d.BreakEnd,
			CheckOutStart: d.CheckOutStart,
			CheckOutEnd:   d.CheckOutEnd,
			WorkType:      schedule.WorkArrangement(d.WorkType),
		}
		if d.Location != nil {
			detail.Location = &schedule.Location{
				Name:         d.Location.Name,
				Latitude:     d.Location.Latitude,
				Longitude:    d.Location.Longitude,
				RadiusMeters: d.Location.RadiusMeters,
			}
		}

		ws.Details = append(ws.Details, detail)
	}

	created, err := s.WorkScheduleRepository.Create(ctx, ws)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	slog.Info("Work schedule created", "work_schedule_id", created.ID, "name", created.Name)

	return toWorkScheduleResponse(created), nil
}

// GetWorkSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	ws, err := s.WorkScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return toWorkScheduleResponse(ws), nil
}

// ListWorkSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListWorkSchedules(ctx context.Context, filter schedule.WorkScheduleFilter) (schedule.ListWorkScheduleResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	schedules, total, err := s.WorkScheduleRepository.List(ctx, filter)
	if err != nil {
		return schedule.ListWorkScheduleResponse{}, err
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, toWorkScheduleResponse(ws))
	}

	return schedule.ListWorkScheduleResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Schedules:  responses,
	}, nil
}

// DeleteWorkSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteWorkSchedule(ctx context.Context, id string) error {
	if err := s.WorkScheduleRepository.SoftDelete(ctx, id); err != nil {
		return err
	}

	slog.Info("Work schedule deleted", "work_schedule_id", id)
	return nil
}

// GetMyScheduleToday implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetMyScheduleToday(ctx context.Context) (schedule.TodayScheduleResponse, error) {
	employeeID, err := claims.EmployeeID(ctx)
	if err != nil {
		return schedule.TodayScheduleResponse{}, err
	}

	ws, err := s.WorkScheduleRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.TodayScheduleResponse{}, err
	}

	resp := schedule.TodayScheduleResponse{
		WorkScheduleID:   ws.ID,
		WorkScheduleName: ws.Name,
		Type:             string(ws.Type),
	}

	weekday, err := s.localWeekday(ctx, employeeID)
	if err != nil {
		return schedule.TodayScheduleResponse{}, err
	}

	detail, ok := ws.ResolveDetail(weekday)
	if !ok {
		return resp, nil
	}

	resp.Scheduled = true
	d := toDetailResponse(*detail)
	resp.Detail = &d

	return resp, nil
}

// localWeekday resolves today's weekday in the employee's branch timezone.
func (s *ScheduleServiceImpl) localWeekday(ctx context.Context, employeeID string) (time.Weekday, error) {
	timezone, err := s.BranchRepository.GetTimezoneByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return time.Now().UTC().Weekday(), nil
		}
		return 0, fmt.Errorf("failed to resolve employee timezone: %w", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	return time.Now().In(loc).Weekday(), nil
}

func toWorkScheduleResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	resp := schedule.WorkScheduleResponse{
		ID:      ws.ID,
		Name:    ws.Name,
		Type:    string(ws.Type),
		Details: make([]schedule.ScheduleDetailResponse, 0, len(ws.Details)),
	}
	for _, d := range ws.Details {
		resp.Details = append(resp.Details, toDetailResponse(d))
	}
	return resp
}

func toDetailResponse(d schedule.ScheduleDetail) schedule.ScheduleDetailResponse {
	resp := schedule.ScheduleDetailResponse{
		ID:            d.ID,
		WorkDays:      d.WorkDays,
		CheckInStart:  d.CheckInStart,
		CheckInEnd:    d.CheckInEnd,
		BreakStart:    d.BreakStart,
		BreakEnd:      d.BreakEnd,
		CheckOutStart: d.CheckOutStart,
		CheckOutEnd:   d.CheckOutEnd,
		WorkType:      string(d.WorkType),
	}
	if d.Location != nil {
		resp.Location = &schedule.LocationResponse{
			ID:           d.Location.ID,
			Name:         d.Location.Name,
			Latitude:     d.Location.Latitude,
			Longitude:    d.Location.Longitude,
			RadiusMeters: d.Location.RadiusMeters,
		}
	}
	return resp
}
