package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/google/uuid"
)

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	staff, err := h.repository.ListStaff(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取职员列表成功", staff)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   string `json:"id"`
		Name string `json:"name" validate:"required"`
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

	// 客户端不指定 ID 时由服务端生成
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	staff := &domain.Staff{
		ID:      req.ID,
		Name:    req.Name,
		OwnerID: owner,
	}

	if err := h.repository.InsertStaff(staff); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			h.errorResponse(w, r, "该职员已存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建职员成功", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.Staff)
	staff.Name = req.Name

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新职员失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新职员成功", staff)
}

// DeleteStaff 只删除职员本身。
// 该职员名下的班次、休假申请和业务块会保留在存储中，
// 画面按职员列表渲染，所以这些悬挂记录不会再被展示
func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffCtx).(*domain.Staff)

	if err := h.repository.DeleteStaff(staff.OwnerID, staff.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除职员成功", nil)
}
