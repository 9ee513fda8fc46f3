package repository

import (
	"database/sql"
	"testing"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_UserLifecycle(t *testing.T) {
	m := NewMemory()

	user := &domain.User{
		Username:     "yamada1",
		PasswordHash: "hash",
		FullName:     "山田太郎",
		Email:        "yamada1@example.com",
		Role:         domain.RoleStaffMember,
	}
	require.NoError(t, m.CreateUser(user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, int32(1), user.Version)

	// 用户名和邮箱的唯一性冲突要带上约束名
	err := m.CreateUser(&domain.User{Username: "yamada1", Email: "other@example.com"})
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "users_username_key")

	err = m.CreateUser(&domain.User{Username: "other", Email: "yamada1@example.com"})
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "users_email_key")

	got, err := m.GetUserByUsername("yamada1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// 版本不匹配视为未命中
	stale := *got
	stale.Version = 99
	assert.ErrorIs(t, m.UpdateUser(&stale), sql.ErrNoRows)

	got.Email = "new@example.com"
	require.NoError(t, m.UpdateUser(got))
	assert.Equal(t, int32(2), got.Version)

	require.NoError(t, m.DeleteUser(user.ID))
	_, err = m.GetUserByID(user.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMemory_ReadsReturnCopies(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.InsertStaff(&domain.Staff{ID: "s1", Name: "職員 1", OwnerID: 1}))

	got, err := m.GetStaffByID(1, "s1")
	require.NoError(t, err)

	// 修改返回值不应影响存储中的记录
	got.Name = "改名"

	again, err := m.GetStaffByID(1, "s1")
	require.NoError(t, err)
	assert.Equal(t, "職員 1", again.Name)
}

func TestMemory_OwnerScoping(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.InsertStaff(&domain.Staff{ID: "s1", Name: "職員 1", OwnerID: 1}))
	require.NoError(t, m.InsertStaff(&domain.Staff{ID: "s1", Name: "別の職員", OwnerID: 2}))

	listOwner1, err := m.ListStaff(1)
	require.NoError(t, err)
	require.Len(t, listOwner1, 1)
	assert.Equal(t, "職員 1", listOwner1[0].Name)

	// 其他用户看不到也取不到别人的数据
	_, err = m.GetStaffByID(3, "s1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMemory_UpsertShift(t *testing.T) {
	m := NewMemory()

	shift := &domain.Shift{
		ID:        domain.ShiftID("s1", "2025-01-06"),
		StaffID:   "s1",
		Date:      "2025-01-06",
		ShiftType: domain.ShiftEarly,
		OwnerID:   1,
	}
	require.NoError(t, m.UpsertShift(shift))

	// 同一职员同一天再保存一次就是覆盖
	shift.ShiftType = domain.ShiftNight
	require.NoError(t, m.UpsertShift(shift))

	shifts, err := m.ListShiftsByDate(1, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, domain.ShiftNight, shifts[0].ShiftType)
}

func TestMemory_RequestUniquePerStaffDate(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.InsertRequest(&domain.ShiftRequest{
		ID: "req1", StaffID: "s1", Date: "2025-01-06", Type: domain.RequestOff, OwnerID: 1,
	}))

	err := m.InsertRequest(&domain.ShiftRequest{
		ID: "req2", StaffID: "s1", Date: "2025-01-06", Type: domain.RequestOff, OwnerID: 1,
	})
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "shift_requests_staff_date_key")

	// 不同用户的同名记录互不影响
	require.NoError(t, m.InsertRequest(&domain.ShiftRequest{
		ID: "req3", StaffID: "s1", Date: "2025-01-06", Type: domain.RequestOff, OwnerID: 2,
	}))
}

func TestMemory_BulkInsertAssignmentsAtomic(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.InsertAssignment(&domain.TaskAssignment{
		ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4", OwnerID: 1,
	}))

	batch := []*domain.TaskAssignment{
		{ID: "a2", StaffID: "s1", Date: "2025-01-06", StartTime: "11:00", EndTime: "12:00", TaskTypeID: "task-4", OwnerID: 1},
		{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "13:00", EndTime: "14:00", TaskTypeID: "task-4", OwnerID: 1},
	}
	require.ErrorIs(t, m.BulkInsertAssignments(batch), ErrDuplicate)

	// 冲突的批量插入不能写入任何记录
	assignments, err := m.ListAssignments(1)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestMemory_DeleteAssignmentsByDate(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.InsertAssignment(&domain.TaskAssignment{
		ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4", OwnerID: 1,
	}))
	require.NoError(t, m.InsertAssignment(&domain.TaskAssignment{
		ID: "a2", StaffID: "s2", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4", OwnerID: 1,
	}))
	require.NoError(t, m.InsertAssignment(&domain.TaskAssignment{
		ID: "a3", StaffID: "s1", Date: "2025-01-07", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4", OwnerID: 1,
	}))

	removed, err := m.DeleteAssignmentsByDate(1, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	left, err := m.ListAssignments(1)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "a3", left[0].ID)
}

func TestMemory_ExportSnapshotConsistentUnderWrites(t *testing.T) {
	m := NewMemory()

	small := &domain.Snapshot{
		Staff:     []*domain.Staff{{ID: "s1", Name: "職員 1"}},
		TaskTypes: []*domain.TaskType{{ID: "t1", Name: "巡回", Color: "#90A4AE", Duration: 30}},
	}
	large := &domain.Snapshot{
		Staff: []*domain.Staff{
			{ID: "s1", Name: "職員 1"},
			{ID: "s2", Name: "職員 2"},
		},
		TaskTypes: []*domain.TaskType{
			{ID: "t1", Name: "巡回", Color: "#90A4AE", Duration: 30},
			{ID: "t2", Name: "記録作成", Color: "#7986CB", Duration: 60},
		},
	}
	require.NoError(t, m.ImportSnapshot(1, small))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				_ = m.ImportSnapshot(1, large)
			} else {
				_ = m.ImportSnapshot(1, small)
			}
		}
	}()

	// 每次导出都必须对应某一次完整的导入，职员数和业务类型数始终一致
	for i := 0; i < 200; i++ {
		snapshot, err := m.ExportSnapshot(1)
		require.NoError(t, err)
		assert.Equal(t, len(snapshot.Staff), len(snapshot.TaskTypes))
	}

	<-done
}

func TestMemory_SnapshotRoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.InsertStaff(&domain.Staff{ID: "s1", Name: "職員 1", OwnerID: 1}))
	require.NoError(t, m.InsertTaskType(&domain.TaskType{ID: "task-4", Name: "入浴介助", Color: "#4FC3F7", Duration: 60, OwnerID: 1}))
	require.NoError(t, m.UpsertShift(&domain.Shift{ID: "s1-2025-01-06", StaffID: "s1", Date: "2025-01-06", ShiftType: domain.ShiftEarly, OwnerID: 1}))
	require.NoError(t, m.InsertRequest(&domain.ShiftRequest{ID: "req1", StaffID: "s1", Date: "2025-01-07", Type: domain.RequestOff, OwnerID: 1}))
	require.NoError(t, m.InsertAssignment(&domain.TaskAssignment{ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4", OwnerID: 1}))

	snapshot, err := m.ExportSnapshot(1)
	require.NoError(t, err)
	assert.Len(t, snapshot.Staff, 1)
	assert.Len(t, snapshot.TaskTypes, 1)
	assert.Len(t, snapshot.Shifts, 1)
	assert.Len(t, snapshot.Requests, 1)
	assert.Len(t, snapshot.Assignments, 1)

	// 导入到另一个用户名下，原有数据被替换
	other := NewMemory()
	require.NoError(t, other.InsertStaff(&domain.Staff{ID: "old", Name: "旧職員", OwnerID: 2}))
	require.NoError(t, other.ImportSnapshot(2, snapshot))

	staff, err := other.ListStaff(2)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "s1", staff[0].ID)

	imported, err := other.GetStaffByID(2, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), imported.OwnerID)
}
