package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateBranch(w http.ResponseWriter, r *http.Request)
	GetBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	branchService branch.BranchService
}

func NewMasterHandler(branchService branch.BranchService) MasterHandler {
	return &MasterHandlerImpl{
		branchService: branchService,
	}
}

// CreateBranch implements MasterHandler.
func (h *MasterHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.branchService.CreateBranch(r.Context(), req)
	if err != nil {
		slog.Error("CreateBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created successfully", resp)
}

// GetBranch implements MasterHandler.
func (h *MasterHandlerImpl) GetBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.branchService.GetBranch(r.Context(), id)
	if err != nil {
		slog.Error("GetBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListBranches implements MasterHandler.
func (h *MasterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	resp, err := h.branchService.ListBranches(r.Context())
	if err != nil {
		slog.Error("ListBranches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
