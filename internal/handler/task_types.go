package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/google/uuid"
)

func (h *Handler) ListTaskTypes(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	taskTypes, err := h.repository.ListTaskTypes(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取业务类型列表成功", taskTypes)
}

func (h *Handler) CreateTaskType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        string `json:"id"`
		Name      string `json:"name" validate:"required"`
		Color     string `json:"color" validate:"required,hexcolor"`
		TextColor string `json:"textColor" validate:"omitempty,hexcolor"`
		Duration  int    `json:"duration" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Duration <= 0 || req.Duration%h.config.Roster.DurationStep != 0 {
		h.errorResponse(w, r, fmt.Sprintf("时长必须是 %d 分钟的正整数倍", h.config.Roster.DurationStep))
		return
	}

	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	// 未指定文字颜色时根据底色取反色
	if req.TextColor == "" {
		req.TextColor = domain.InvertColor(req.Color)
	}

	taskType := &domain.TaskType{
		ID:        req.ID,
		Name:      req.Name,
		Color:     req.Color,
		TextColor: req.TextColor,
		Duration:  req.Duration,
		OwnerID:   owner,
	}

	if err := h.repository.InsertTaskType(taskType); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			h.errorResponse(w, r, "该业务类型已存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建业务类型成功", taskType)
}

func (h *Handler) UpdateTaskType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string `json:"name"`
		Color     *string `json:"color" validate:"omitempty,hexcolor"`
		TextColor *string `json:"textColor" validate:"omitempty,hexcolor"`
		Duration  *int    `json:"duration"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	taskType := r.Context().Value(TaskTypeCtx).(*domain.TaskType)

	if req.Name != nil {
		taskType.Name = *req.Name
	}
	if req.Color != nil {
		taskType.Color = *req.Color
	}
	if req.TextColor != nil {
		taskType.TextColor = *req.TextColor
	}
	if req.Duration != nil {
		if *req.Duration <= 0 || *req.Duration%h.config.Roster.DurationStep != 0 {
			h.errorResponse(w, r, fmt.Sprintf("时长必须是 %d 分钟的正整数倍", h.config.Roster.DurationStep))
			return
		}
		taskType.Duration = *req.Duration
	}

	if err := h.repository.UpdateTaskType(taskType); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新业务类型失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新业务类型成功", taskType)
}

// DeleteTaskType 只删除业务类型本身，引用它的业务块会留在存储中，
// 画面上这些业务块会退化为无色块
func (h *Handler) DeleteTaskType(w http.ResponseWriter, r *http.Request) {
	taskType := r.Context().Value(TaskTypeCtx).(*domain.TaskType)

	if err := h.repository.DeleteTaskType(taskType.OwnerID, taskType.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除业务类型成功", nil)
}
