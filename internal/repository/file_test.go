package repository

import (
	"database/sql"
	"testing"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	f, err := NewFile(dir)
	require.NoError(t, err)

	user := &domain.User{
		Username:     "yamada1",
		PasswordHash: "hash",
		FullName:     "山田太郎",
		Email:        "yamada1@example.com",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, f.CreateUser(user))
	require.NoError(t, f.InsertStaff(&domain.Staff{ID: "s1", Name: "職員 1", OwnerID: user.ID}))
	require.NoError(t, f.UpsertShift(&domain.Shift{
		ID: "s1-2025-01-06", StaffID: "s1", Date: "2025-01-06", ShiftType: domain.ShiftEarly, OwnerID: user.ID,
	}))
	require.NoError(t, f.InsertAssignment(&domain.TaskAssignment{
		ID: "a1", StaffID: "s1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00", TaskTypeID: "task-4", OwnerID: user.ID,
	}))

	// 重新打开同一个目录，所有数据应当原样恢复
	reopened, err := NewFile(dir)
	require.NoError(t, err)

	got, err := reopened.GetUserByUsername("yamada1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, user.Version, got.Version)

	staff, err := reopened.GetStaffByID(user.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, "職員 1", staff.Name)
	assert.Equal(t, user.ID, staff.OwnerID)

	shifts, err := reopened.ListShiftsByDate(user.ID, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, domain.ShiftEarly, shifts[0].ShiftType)

	assignments, err := reopened.ListAssignments(user.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestFile_NewUserIDContinuesAfterReopen(t *testing.T) {
	dir := t.TempDir()

	f, err := NewFile(dir)
	require.NoError(t, err)

	first := &domain.User{Username: "u1", Email: "u1@example.com"}
	require.NoError(t, f.CreateUser(first))

	reopened, err := NewFile(dir)
	require.NoError(t, err)

	second := &domain.User{Username: "u2", Email: "u2@example.com"}
	require.NoError(t, reopened.CreateUser(second))
	assert.Greater(t, second.ID, first.ID)
}

func TestFile_DeletePersisted(t *testing.T) {
	dir := t.TempDir()

	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.InsertStaff(&domain.Staff{ID: "s1", Name: "職員 1", OwnerID: 1}))
	require.NoError(t, f.DeleteStaff(1, "s1"))

	reopened, err := NewFile(dir)
	require.NoError(t, err)

	_, err = reopened.GetStaffByID(1, "s1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
