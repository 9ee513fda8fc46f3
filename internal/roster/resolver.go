package roster

import (
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

// Resolver 根据三种信号源计算职员在某一天的实际班次类别，
// 优先级从高到低: 显式班次记录 > 休假申请 > 每周固定休业日 > 默认日勤
type Resolver struct {
	closureWeekday time.Weekday
}

func NewResolver(closureWeekday time.Weekday) *Resolver {
	return &Resolver{
		closureWeekday: closureWeekday,
	}
}

// Index 把班次记录和休假申请按 (staffID, date) 预先建好索引，
// 月度表格要对 职员数 × 天数 个单元格逐一求值，线性扫描会太慢
type Index struct {
	shifts   map[string]*domain.Shift
	requests map[string]*domain.ShiftRequest
}

func indexKey(staffID string, date string) string {
	return staffID + "|" + date
}

func NewIndex(shifts []*domain.Shift, requests []*domain.ShiftRequest) *Index {
	idx := &Index{
		shifts:   make(map[string]*domain.Shift, len(shifts)),
		requests: make(map[string]*domain.ShiftRequest, len(requests)),
	}

	for _, shift := range shifts {
		idx.shifts[indexKey(shift.StaffID, shift.Date)] = shift
	}

	for _, request := range requests {
		key := indexKey(request.StaffID, request.Date)
		// 同一个 (staffID, date) 理论上只会有一条申请，这里保留最先出现的那条
		if _, exists := idx.requests[key]; !exists {
			idx.requests[key] = request
		}
	}

	return idx
}

// Resolve 对给定的 (staffID, date) 求出实际班次类别。
// 这个函数是全函数，任何输入都会返回目录中的某一个类别
func (r *Resolver) Resolve(staffID string, date string, idx *Index) domain.ShiftType {
	// 1. 显式班次记录直接生效，即使它显式指定了公休
	if shift, exists := idx.shifts[indexKey(staffID, date)]; exists {
		return shift.ShiftType
	}

	// 2. 休假申请
	if request, exists := idx.requests[indexKey(staffID, date)]; exists && request.Type == domain.RequestOff {
		return domain.ShiftOff
	}

	// 3. 每周固定休业日
	if day, err := time.Parse("2006-01-02", date); err == nil && day.Weekday() == r.closureWeekday {
		return domain.ShiftOff
	}

	// 4. 默认日勤
	return domain.ShiftDay
}

// ResolveSlices 是 Resolve 的便捷形式，适合只求单个单元格的调用方
func (r *Resolver) ResolveSlices(staffID string, date string, shifts []*domain.Shift, requests []*domain.ShiftRequest) domain.ShiftType {
	return r.Resolve(staffID, date, NewIndex(shifts, requests))
}
