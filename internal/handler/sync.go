package handler

import (
	"net/http"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

// ExportSnapshot 导出当前用户的全部排班数据，用于手动跨设备迁移
func (h *Handler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	snapshot, err := h.repository.ExportSnapshot(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "导出成功", snapshot)
}

// ImportSnapshot 用快照整体替换当前用户的排班数据。
// 导入是替换而不是合并，已有数据会被清空
func (h *Handler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.Snapshot
	if err := h.readJSON(r, &snapshot); err != nil {
		h.badRequest(w, r, err)
		return
	}

	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.ImportSnapshot(owner, &snapshot); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "导入成功", nil)
}
