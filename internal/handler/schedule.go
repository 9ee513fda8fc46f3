package handler

import (
	"net/http"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/roster"
)

func (h *Handler) GetShiftTypes(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取班次类别目录成功", domain.ShiftTypeCatalog)
}

// ganttRow 是甘特图中的一行：当天出勤的职员和他的全部业务块
type ganttRow struct {
	Staff       *domain.Staff            `json:"staff"`
	ShiftType   domain.ShiftType         `json:"shiftType"`
	Assignments []*domain.TaskAssignment `json:"assignments"`
}

// GetGantt 返回某天的甘特图数据。
// 只包含当天出勤（班次类别不是公休）的职员
func (h *Handler) GetGantt(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, r, "date 参数无效，应为 YYYY-MM-DD")
		return
	}

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

	shifts, err := h.repository.ListShiftsByDate(owner, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	requests, err := h.repository.ListRequests(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignments, err := h.repository.ListAssignmentsByDate(owner, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	byStaff := make(map[string][]*domain.TaskAssignment, len(staff))
	for _, a := range assignments {
		byStaff[a.StaffID] = append(byStaff[a.StaffID], a)
	}

	idx := roster.NewIndex(shifts, requests)
	rows := make([]*ganttRow, 0, len(staff))
	for _, s := range staff {
		shiftType := h.resolver.Resolve(s.ID, date, idx)
		if shiftType == domain.ShiftOff {
			continue
		}

		rowAssignments := byStaff[s.ID]
		if rowAssignments == nil {
			rowAssignments = []*domain.TaskAssignment{}
		}

		rows = append(rows, &ganttRow{
			Staff:       s,
			ShiftType:   shiftType,
			Assignments: rowAssignments,
		})
	}

	h.successResponse(w, r, "获取甘特图数据成功", rows)
}

// GetDailyCounts 返回某天各班次类别的人数，以及是否满足最低人员配置
func (h *Handler) GetDailyCounts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, r, "date 参数无效，应为 YYYY-MM-DD")
		return
	}

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

	shifts, err := h.repository.ListShiftsByDate(owner, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	requests, err := h.repository.ListRequests(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	counts := h.resolver.DailyCounts(date, staff, roster.NewIndex(shifts, requests))
	sufficient := roster.CheckStaffing(counts, roster.StaffingMinimums{
		Early: h.config.Roster.MinEarly,
		Late:  h.config.Roster.MinLate,
	})

	h.successResponse(w, r, "获取每日统计成功", map[string]any{
		"date":       date,
		"counts":     counts,
		"sufficient": sufficient,
	})
}

// monthlyCountsRow 是月度汇总中的一行：单个职员在当月各班次类别的天数
type monthlyCountsRow struct {
	Staff  *domain.Staff            `json:"staff"`
	Counts map[domain.ShiftType]int `json:"counts"`
}

// GetMonthlyCounts 返回当月每个职员各班次类别的天数，month 参数形如 YYYY-MM
func (h *Handler) GetMonthlyCounts(w http.ResponseWriter, r *http.Request) {
	monthParam := r.URL.Query().Get("month")
	firstDay, err := time.Parse("2006-01", monthParam)
	if err != nil {
		h.errorResponse(w, r, "month 参数无效，应为 YYYY-MM")
		return
	}

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

	shifts, err := h.repository.ListShifts(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	requests, err := h.repository.ListRequests(owner)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	idx := roster.NewIndex(shifts, requests)
	rows := make([]*monthlyCountsRow, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, &monthlyCountsRow{
			Staff:  s,
			Counts: h.resolver.MonthlyCounts(s.ID, firstDay.Year(), firstDay.Month(), idx),
		})
	}

	h.successResponse(w, r, "获取月度统计成功", rows)
}
