package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	CreateWorkSchedule(w http.ResponseWriter, r *http.Request)
	GetWorkSchedule(w http.ResponseWriter, r *http.Request)
	ListWorkSchedules(w http.ResponseWriter, r *http.Request)
	DeleteWorkSchedule(w http.ResponseWriter, r *http.Request)
	GetMyScheduleToday(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// CreateWorkSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateWorkSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWorkScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWorkSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.CreateWorkSchedule(r.Context(), req)
	if err != nil {
		slog.Error("CreateWorkSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work schedule created successfully", resp)
}

// GetWorkSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetWorkSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.scheduleService.GetWorkSchedule(r.Context(), id)
	if err != nil {
		slog.Error("GetWorkSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListWorkSchedules implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListWorkSchedules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := schedule.WorkScheduleFilter{
		Name: queryPtr(q.Get("name")),
		Type: queryPtr(q.Get("type")),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	resp, err := h.scheduleService.ListWorkSchedules(r.Context(), filter)
	if err != nil {
		slog.Error("ListWorkSchedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Schedules, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// DeleteWorkSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteWorkSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteWorkSchedule(r.Context(), id); err != nil {
		slog.Error("DeleteWorkSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule deleted successfully", nil)
}

// GetMyScheduleToday implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetMyScheduleToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.GetMyScheduleToday(r.Context())
	if err != nil {
		slog.Error("GetMyScheduleToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
