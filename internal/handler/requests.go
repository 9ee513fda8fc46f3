package handler

import (
	"errors"
	"net/http"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	requests, err := h.repository.ListRequests(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取休假申请列表成功", requests)
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string `json:"staffId" validate:"required"`
		Date    string `json:"date" validate:"required,datetime=2006-01-02"`
		Type    string `json:"type" validate:"required,oneof=Off"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	request := &domain.ShiftRequest{
		ID:      uuid.NewString(),
		StaffID: req.StaffID,
		Date:    req.Date,
		Type:    domain.RequestType(req.Type),
		OwnerID: owner,
	}

	if err := h.repository.InsertRequest(request); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			h.errorResponse(w, r, "该职员当天已有休假申请")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建休假申请成功", request)
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.DeleteRequest(owner, chi.URLParam(r, "id")); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除休假申请成功", nil)
}
