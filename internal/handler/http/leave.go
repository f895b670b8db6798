package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetMyLeaveRequests(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	GetLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit implements LeaveHandler. Multipart: a JSON 'data' field plus an
// optional 'attachment' file.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, fileHeader, err := r.FormFile("attachment")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	req.File = file
	req.FileHeader = fileHeader

	leaveRequest, err := l.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leaveRequest)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := l.reviewRequest(w, r)
	if !ok {
		return
	}

	resp, err := l.leaveService.Approve(r.Context(), req)
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", resp)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := l.reviewRequest(w, r)
	if !ok {
		return
	}

	resp, err := l.leaveService.Reject(r.Context(), req)
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", resp)
}

// GetMyLeaveRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)
	filter.EmployeeID = nil

	resp, err := l.leaveService.GetMyLeaveRequests(r.Context(), filter)
	if err != nil {
		slog.Error("GetMyLeaveRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Requests, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// ListLeaveRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)

	resp, err := l.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		slog.Error("ListLeaveRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Requests, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// GetLeaveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := l.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		slog.Error("GetLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (l *LeaveHandlerImpl) reviewRequest(w http.ResponseWriter, r *http.Request) (leave.ReviewLeaveRequest, bool) {
	var req leave.ReviewLeaveRequest

	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Review leave decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return leave.ReviewLeaveRequest{}, false
		}
	}

	req.ID = chi.URLParam(r, "id")
	return req, true
}

func leaveFilterFromQuery(r *http.Request) leave.LeaveRequestFilter {
	q := r.URL.Query()

	filter := leave.LeaveRequestFilter{
		EmployeeID: queryPtr(q.Get("employee_id")),
		Status:     queryPtr(q.Get("status")),
		StartDate:  queryPtr(q.Get("start_date")),
		EndDate:    queryPtr(q.Get("end_date")),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	return filter
}
