package assignment

import (
	"testing"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bathTask = &domain.TaskType{ID: "task-4", Name: "入浴介助", Color: "#4FC3F7", Duration: 60}

func TestPlace(t *testing.T) {
	placed, err := Place(nil, "s1", "2025-01-06", "09:00", bathTask)
	require.NoError(t, err)

	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, "s1", placed.StaffID)
	assert.Equal(t, "2025-01-06", placed.Date)
	assert.Equal(t, "09:00", placed.StartTime)
	assert.Equal(t, "10:00", placed.EndTime)
	assert.Equal(t, "task-4", placed.TaskTypeID)
}

func TestPlace_Conflict(t *testing.T) {
	existing := []*domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	}

	// 部分重叠
	_, err := Place(existing, "s1", "2025-01-06", "09:30", bathTask)
	assert.ErrorIs(t, err, ErrConflict)

	// 完全包含
	_, err = Place(existing, "s1", "2025-01-06", "09:00", &domain.TaskType{ID: "task-5", Duration: 30})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPlace_AdjacentBlocksAllowed(t *testing.T) {
	existing := []*domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	}

	// 区间是左闭右开的，首尾相接不算重叠
	placed, err := Place(existing, "s1", "2025-01-06", "10:00", bathTask)
	require.NoError(t, err)
	assert.Equal(t, "11:00", placed.EndTime)

	placed, err = Place(existing, "s1", "2025-01-06", "08:00", bathTask)
	require.NoError(t, err)
	assert.Equal(t, "09:00", placed.EndTime)
}

func TestPlace_IgnoresOtherStaffAndDates(t *testing.T) {
	existing := []*domain.TaskAssignment{
		{ID: "a1", StaffID: "s2", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
		{ID: "a2", StaffID: "s1", Date: "2025-01-07", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	}

	_, err := Place(existing, "s1", "2025-01-06", "09:00", bathTask)
	assert.NoError(t, err)
}

func TestPlace_EndAtMidnight(t *testing.T) {
	patrolTask := &domain.TaskType{ID: "task-8", Name: "巡回", Color: "#90A4AE", Duration: 30}

	// 在零点整结束的业务块是合法的，终点记作 "24:00"
	placed, err := Place(nil, "s1", "2025-01-06", "23:30", patrolTask)
	require.NoError(t, err)
	assert.Equal(t, "24:00", placed.EndTime)

	existing := []*domain.TaskAssignment{placed}

	// 这样的块可以被点击命中
	found, ok := FindAtClick(existing, "s1", "2025-01-06", "23:45")
	require.True(t, ok)
	assert.Equal(t, placed.ID, found.ID)

	// 也不妨碍当天其他时段的放置
	_, err = Place(existing, "s1", "2025-01-06", "08:00", bathTask)
	assert.NoError(t, err)

	// 与它重叠的放置仍会被拒绝
	_, err = Place(existing, "s1", "2025-01-06", "23:00", bathTask)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPlace_CrossMidnightRejected(t *testing.T) {
	_, err := Place(nil, "s1", "2025-01-06", "23:30", bathTask)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestPlace_InvalidDuration(t *testing.T) {
	_, err := Place(nil, "s1", "2025-01-06", "09:00", &domain.TaskType{ID: "bad", Duration: 0})
	assert.Error(t, err)
}

func TestFindAtClick(t *testing.T) {
	existing := []*domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	}

	// 起点命中
	found, ok := FindAtClick(existing, "s1", "2025-01-06", "09:00")
	assert.True(t, ok)
	assert.Equal(t, "a1", found.ID)

	// 中间命中
	_, ok = FindAtClick(existing, "s1", "2025-01-06", "09:59")
	assert.True(t, ok)

	// 终点是开区间，不命中
	_, ok = FindAtClick(existing, "s1", "2025-01-06", "10:00")
	assert.False(t, ok)

	// 空白时段
	_, ok = FindAtClick(existing, "s1", "2025-01-06", "12:00")
	assert.False(t, ok)

	// 其他职员
	_, ok = FindAtClick(existing, "s2", "2025-01-06", "09:30")
	assert.False(t, ok)
}
