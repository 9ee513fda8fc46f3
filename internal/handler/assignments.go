package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/assignment"
	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	date := r.URL.Query().Get("date")

	var assignments []*domain.TaskAssignment
	if date == "" {
		assignments, err = h.repository.ListAssignments(owner)
	} else {
		assignments, err = h.repository.ListAssignmentsByDate(owner, date)
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取业务分配列表成功", assignments)
}

func (h *Handler) PlaceAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID    string `json:"staffId" validate:"required"`
		Date       string `json:"date" validate:"required,datetime=2006-01-02"`
		StartTime  string `json:"startTime" validate:"required"`
		TaskTypeID string `json:"taskTypeId" validate:"required"`
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

	taskType, err := h.repository.GetTaskTypeByID(owner, req.TaskTypeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "业务类型不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	existing, err := h.repository.ListAssignmentsByDate(owner, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	placed, err := assignment.Place(existing, req.StaffID, req.Date, req.StartTime, taskType)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrConflict):
			h.errorResponse(w, r, "与已有业务的时间重叠")
		default:
			h.badRequest(w, r, err)
		}
		return
	}

	placed.OwnerID = owner
	if err := h.repository.InsertAssignment(placed); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "放置业务成功", placed)
}

// RemoveAssignmentAtClick 删除覆盖被点击时刻的业务块。
// 点击的是空白时段时不做任何变更，直接返回成功
func (h *Handler) RemoveAssignmentAtClick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID     string `json:"staffId" validate:"required"`
		Date        string `json:"date" validate:"required,datetime=2006-01-02"`
		ClickedTime string `json:"clickedTime" validate:"required"`
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

	existing, err := h.repository.ListAssignmentsByDate(owner, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	target, found := assignment.FindAtClick(existing, req.StaffID, req.Date, req.ClickedTime)
	if !found {
		h.successResponse(w, r, "该时刻没有业务", nil)
		return
	}

	if err := h.repository.DeleteAssignment(owner, target.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除业务成功", target)
}

func (h *Handler) clipboardKey(ownerID int64) string {
	return fmt.Sprintf("clipboard:%d", ownerID)
}

// CopyAssignments 把某天的全部业务块快照存到 redis，作为该用户的剪贴板
func (h *Handler) CopyAssignments(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
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

	assignments, err := h.repository.ListAssignmentsByDate(owner, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	clipboard := &assignment.Clipboard{}
	clipboard.Copy(assignments)

	data, err := json.Marshal(clipboard.Items())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	if err := h.redisClient.Set(ctx, h.clipboardKey(owner), data, time.Duration(h.config.Clipboard.Expiration)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "复制成功", map[string]int{"count": len(clipboard.Items())})
}

// PasteAssignments 把剪贴板中的业务块粘贴到目标日期。
// 每条记录会换上新的 ID 并把日期改写为目标日期，
// 不会对目标日期已有的业务块做重叠检查
func (h *Handler) PasteAssignments(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
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

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	data, err := h.redisClient.Get(ctx, h.clipboardKey(owner)).Bytes()
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			h.errorResponse(w, r, "剪贴板为空")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var items []domain.TaskAssignment
	if err := json.Unmarshal(data, &items); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	clipboard := assignment.NewClipboard(items)
	if clipboard.IsEmpty() {
		h.errorResponse(w, r, "剪贴板为空")
		return
	}

	pasted := clipboard.Paste(req.Date)
	for _, a := range pasted {
		a.OwnerID = owner
	}

	if err := h.repository.BulkInsertAssignments(pasted); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			h.errorResponse(w, r, "粘贴失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "粘贴成功", pasted)
}

func (h *Handler) ClearAssignmentsByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.errorResponse(w, r, "缺少 date 参数")
		return
	}

	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	removed, err := h.repository.DeleteAssignmentsByDate(owner, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "清空业务成功", map[string]int64{"removed": removed})
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.DeleteAssignment(owner, chi.URLParam(r, "id")); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除业务成功", nil)
}
