package handler

import (
	"log/slog"
	"net/http"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/roster"
)

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	date := r.URL.Query().Get("date")

	var shifts []*domain.Shift
	if date == "" {
		shifts, err = h.repository.ListShifts(owner)
	} else {
		shifts, err = h.repository.ListShiftsByDate(owner, date)
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次列表成功", shifts)
}

func (h *Handler) UpsertShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID   string `json:"staffId" validate:"required"`
		Date      string `json:"date" validate:"required,datetime=2006-01-02"`
		ShiftType string `json:"shiftType" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shiftType := domain.ShiftType(req.ShiftType)
	if !domain.IsValidShiftType(shiftType) {
		h.errorResponse(w, r, "无效的班次类别")
		return
	}

	owner, err := h.ownerID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shift := &domain.Shift{
		ID:        domain.ShiftID(req.StaffID, req.Date),
		StaffID:   req.StaffID,
		Date:      req.Date,
		ShiftType: shiftType,
		OwnerID:   owner,
	}

	if err := h.repository.UpsertShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 保存后检查当天的人员配置，不足时给管理员发告警邮件。
	// 告警失败不影响班次保存本身
	if err := h.alertOnShortStaffing(owner, req.Date); err != nil {
		slog.Error("无法发送人手不足告警", "date", req.Date, "error", err)
	}

	h.successResponse(w, r, "保存班次成功", shift)
}

// alertOnShortStaffing 重新计算某天的班次类别人数，
// 早番或遅番低于配置的最低人数时发送告警邮件
func (h *Handler) alertOnShortStaffing(ownerID int64, date string) error {
	staff, err := h.repository.ListStaff(ownerID)
	if err != nil {
		return err
	}

	shifts, err := h.repository.ListShiftsByDate(ownerID, date)
	if err != nil {
		return err
	}

	requests, err := h.repository.ListRequests(ownerID)
	if err != nil {
		return err
	}

	counts := h.resolver.DailyCounts(date, staff, roster.NewIndex(shifts, requests))
	minimums := roster.StaffingMinimums{
		Early: h.config.Roster.MinEarly,
		Late:  h.config.Roster.MinLate,
	}

	if roster.CheckStaffing(counts, minimums) {
		return nil
	}

	return h.publishMailMessage(domain.MailMessage{
		Type: "staffing_alert",
		To:   h.config.Email.AlertReceiver,
		Data: domain.StaffingAlertMailData{
			Date:       date,
			EarlyCount: counts[domain.ShiftEarly],
			LateCount:  counts[domain.ShiftLate],
			MinEarly:   minimums.Early,
			MinLate:    minimums.Late,
		},
	})
}
