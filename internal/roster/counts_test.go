package roster

import (
	"testing"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDailyCounts(t *testing.T) {
	r := NewResolver(time.Sunday)

	staff := []*domain.Staff{
		{ID: "s1", Name: "職員 1"},
		{ID: "s2", Name: "職員 2"},
		{ID: "s3", Name: "職員 3"},
	}
	shifts := []*domain.Shift{
		{ID: "s1-2025-01-06", StaffID: "s1", Date: "2025-01-06", ShiftType: domain.ShiftEarly},
		{ID: "s2-2025-01-06", StaffID: "s2", Date: "2025-01-06", ShiftType: domain.ShiftEarly},
	}

	counts := r.DailyCounts("2025-01-06", staff, NewIndex(shifts, nil))

	assert.Equal(t, 2, counts[domain.ShiftEarly])
	// s3 没有任何记录，周一默认日勤
	assert.Equal(t, 1, counts[domain.ShiftDay])

	// 目录中的全部类别都要出现在结果里，即使计数为 0
	for _, def := range domain.ShiftTypeCatalog {
		_, exists := counts[def.ID]
		assert.True(t, exists, "类别 %s 缺失", def.ID)
	}
	assert.Equal(t, 0, counts[domain.ShiftNight])
}

func TestMonthlyCounts(t *testing.T) {
	r := NewResolver(time.Sunday)

	// 2025 年 1 月有 31 天，其中 4 个周日 (5、12、19、26)
	shifts := []*domain.Shift{
		{ID: "s1-2025-01-06", StaffID: "s1", Date: "2025-01-06", ShiftType: domain.ShiftNight},
		{ID: "s1-2025-01-07", StaffID: "s1", Date: "2025-01-07", ShiftType: domain.ShiftNight},
	}
	requests := []*domain.ShiftRequest{
		{ID: "req1", StaffID: "s1", Date: "2025-01-08", Type: domain.RequestOff},
	}

	counts := r.MonthlyCounts("s1", 2025, time.January, NewIndex(shifts, requests))

	assert.Equal(t, 2, counts[domain.ShiftNight])
	// 4 个周日加 1 条休假申请
	assert.Equal(t, 5, counts[domain.ShiftOff])
	assert.Equal(t, 31-2-5, counts[domain.ShiftDay])

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 31, total)
}

func TestCheckStaffing(t *testing.T) {
	minimums := StaffingMinimums{Early: 1, Late: 2}

	ok := map[domain.ShiftType]int{domain.ShiftEarly: 1, domain.ShiftLate: 2}
	assert.True(t, CheckStaffing(ok, minimums))

	noEarly := map[domain.ShiftType]int{domain.ShiftEarly: 0, domain.ShiftLate: 3}
	assert.False(t, CheckStaffing(noEarly, minimums))

	shortLate := map[domain.ShiftType]int{domain.ShiftEarly: 2, domain.ShiftLate: 1}
	assert.False(t, CheckStaffing(shortLate, minimums))
}
