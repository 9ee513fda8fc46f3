package roster

import (
	"fmt"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

// DailyCounts 统计某一天各班次类别的人数。
// 返回的 map 预先填入了目录中的全部类别，没有人的类别计数为 0，
// 这样调用方渲染整行时不需要做空值判断
func (r *Resolver) DailyCounts(date string, staff []*domain.Staff, idx *Index) map[domain.ShiftType]int {
	counts := make(map[domain.ShiftType]int, len(domain.ShiftTypeCatalog))
	for _, def := range domain.ShiftTypeCatalog {
		counts[def.ID] = 0
	}

	for _, s := range staff {
		counts[r.Resolve(s.ID, date, idx)]++
	}

	return counts
}

// MonthlyCounts 统计单个职员在一个月内各班次类别的天数，用于月度汇总列
func (r *Resolver) MonthlyCounts(staffID string, year int, month time.Month, idx *Index) map[domain.ShiftType]int {
	counts := make(map[domain.ShiftType]int, len(domain.ShiftTypeCatalog))
	for _, def := range domain.ShiftTypeCatalog {
		counts[def.ID] = 0
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		counts[r.Resolve(staffID, date, idx)]++
	}

	return counts
}

// StaffingMinimums 是每日的最低人员配置，低于该值只作提示而不阻止保存
type StaffingMinimums struct {
	Early int
	Late  int
}

// CheckStaffing 判断某天的人员配置是否满足最低要求
func CheckStaffing(counts map[domain.ShiftType]int, minimums StaffingMinimums) bool {
	if counts[domain.ShiftEarly] < minimums.Early {
		return false
	}
	if counts[domain.ShiftLate] < minimums.Late {
		return false
	}
	return true
}
