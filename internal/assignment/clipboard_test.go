package assignment

import (
	"testing"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRekey(t *testing.T) {
	items := []domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
		{ID: "a2", StaffID: "s2", Date: "2025-01-06", StartTime: "13:00", EndTime: "13:30", TaskTypeID: "task-5"},
	}

	rekeyed := Rekey(items, "2025-01-08")
	require.Len(t, rekeyed, 2)

	for i, got := range rekeyed {
		assert.NotEqual(t, items[i].ID, got.ID)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "2025-01-08", got.Date)
		assert.Equal(t, items[i].StaffID, got.StaffID)
		assert.Equal(t, items[i].StartTime, got.StartTime)
		assert.Equal(t, items[i].EndTime, got.EndTime)
		assert.Equal(t, items[i].TaskTypeID, got.TaskTypeID)
	}

	// 两条记录的新 ID 不能相同
	assert.NotEqual(t, rekeyed[0].ID, rekeyed[1].ID)
}

func TestClipboard_CopySnapshotIsolated(t *testing.T) {
	c := &Clipboard{}
	assert.True(t, c.IsEmpty())

	source := []*domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	}
	c.Copy(source)
	assert.False(t, c.IsEmpty())

	// 复制后修改原记录不应影响剪贴板内容
	source[0].StartTime = "11:00"
	assert.Equal(t, "09:00", c.Items()[0].StartTime)
}

func TestNewClipboard(t *testing.T) {
	items := []domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	}

	c := NewClipboard(items)
	assert.False(t, c.IsEmpty())

	// 恢复时同样按值保存，修改来源切片不影响剪贴板
	items[0].StartTime = "11:00"
	assert.Equal(t, "09:00", c.Items()[0].StartTime)

	pasted := c.Paste("2025-01-08")
	require.Len(t, pasted, 1)
	assert.Equal(t, "2025-01-08", pasted[0].Date)
	assert.NotEqual(t, "a1", pasted[0].ID)

	assert.True(t, NewClipboard(nil).IsEmpty())
}

func TestClipboard_Paste(t *testing.T) {
	c := &Clipboard{}
	assert.Nil(t, c.Paste("2025-01-08"))

	c.Copy([]*domain.TaskAssignment{
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4"},
	})

	pasted := c.Paste("2025-01-08")
	require.Len(t, pasted, 1)
	assert.Equal(t, "2025-01-08", pasted[0].Date)
	assert.NotEqual(t, "a1", pasted[0].ID)

	// 同一份剪贴板可以反复粘贴，每次都生成新 ID
	again := c.Paste("2025-01-09")
	require.Len(t, again, 1)
	assert.NotEqual(t, pasted[0].ID, again[0].ID)
}
