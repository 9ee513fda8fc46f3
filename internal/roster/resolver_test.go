package roster

import (
	"testing"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

// 2025-01-05 是周日，2025-01-06 是周一
func newTestResolver() *Resolver {
	return NewResolver(time.Sunday)
}

func TestResolve_ExplicitShiftWins(t *testing.T) {
	r := newTestResolver()

	shifts := []*domain.Shift{
		{ID: "s1-2025-01-05", StaffID: "s1", Date: "2025-01-05", ShiftType: domain.ShiftNight},
	}
	requests := []*domain.ShiftRequest{
		{ID: "req1", StaffID: "s1", Date: "2025-01-05", Type: domain.RequestOff},
	}

	// 显式班次同时压过休假申请和周日休业
	got := r.Resolve("s1", "2025-01-05", NewIndex(shifts, requests))
	assert.Equal(t, domain.ShiftNight, got)
}

func TestResolve_ExplicitOffShift(t *testing.T) {
	r := newTestResolver()

	shifts := []*domain.Shift{
		{ID: "s1-2025-01-06", StaffID: "s1", Date: "2025-01-06", ShiftType: domain.ShiftOff},
	}

	got := r.Resolve("s1", "2025-01-06", NewIndex(shifts, nil))
	assert.Equal(t, domain.ShiftOff, got)
}

func TestResolve_OffRequest(t *testing.T) {
	r := newTestResolver()

	requests := []*domain.ShiftRequest{
		{ID: "req1", StaffID: "s1", Date: "2025-01-06", Type: domain.RequestOff},
	}

	got := r.Resolve("s1", "2025-01-06", NewIndex(nil, requests))
	assert.Equal(t, domain.ShiftOff, got)
}

func TestResolve_ClosureWeekday(t *testing.T) {
	r := newTestResolver()

	got := r.Resolve("s1", "2025-01-05", NewIndex(nil, nil))
	assert.Equal(t, domain.ShiftOff, got)
}

func TestResolve_DefaultDay(t *testing.T) {
	r := newTestResolver()

	got := r.Resolve("s1", "2025-01-06", NewIndex(nil, nil))
	assert.Equal(t, domain.ShiftDay, got)
}

func TestResolve_OtherStaffUnaffected(t *testing.T) {
	r := newTestResolver()

	shifts := []*domain.Shift{
		{ID: "s1-2025-01-06", StaffID: "s1", Date: "2025-01-06", ShiftType: domain.ShiftEarly},
	}

	got := r.Resolve("s2", "2025-01-06", NewIndex(shifts, nil))
	assert.Equal(t, domain.ShiftDay, got)
}

func TestNewIndex_KeepsFirstDuplicateRequest(t *testing.T) {
	requests := []*domain.ShiftRequest{
		{ID: "req1", StaffID: "s1", Date: "2025-01-06", Type: domain.RequestOff},
		{ID: "req2", StaffID: "s1", Date: "2025-01-06", Type: domain.RequestOff},
	}

	idx := NewIndex(nil, requests)
	assert.Equal(t, "req1", idx.requests[indexKey("s1", "2025-01-06")].ID)
}

func TestResolveSlices(t *testing.T) {
	r := newTestResolver()

	shifts := []*domain.Shift{
		{ID: "s1-2025-01-07", StaffID: "s1", Date: "2025-01-07", ShiftType: domain.ShiftLate},
	}

	got := r.ResolveSlices("s1", "2025-01-07", shifts, nil)
	assert.Equal(t, domain.ShiftLate, got)
}
