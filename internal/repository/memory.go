package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

// Memory 是持久化契约的内存参考实现，同时也是测试用的替身。
// 所有读操作都返回副本，防止调用方绕过契约直接修改存储中的记录。
// 未命中的查询返回 sql.ErrNoRows，和数据库后端保持一致
type Memory struct {
	mu         sync.RWMutex
	nextUserID int64
	users      map[int64]*domain.User
	staff      map[string]*domain.Staff
	taskTypes  map[string]*domain.TaskType
	shifts     map[string]*domain.Shift
	requests   map[string]*domain.ShiftRequest
	assigns    map[string]*domain.TaskAssignment
}

func NewMemory() *Memory {
	return &Memory{
		nextUserID: 1,
		users:      make(map[int64]*domain.User),
		staff:      make(map[string]*domain.Staff),
		taskTypes:  make(map[string]*domain.TaskType),
		shifts:     make(map[string]*domain.Shift),
		requests:   make(map[string]*domain.ShiftRequest),
		assigns:    make(map[string]*domain.TaskAssignment),
	}
}

// ownerKey 把记录 ID 和持有者一起作为主键，不同用户的数据互不可见
func ownerKey(ownerID int64, id string) string {
	return fmt.Sprintf("%d|%s", ownerID, id)
}

func (m *Memory) GetUserByID(id int64) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, sql.ErrNoRows
	}

	clone := *user
	return &clone, nil
}

func (m *Memory) GetUserByUsername(username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (m *Memory) GetAllUsers() ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		clone := *user
		users = append(users, &clone)
	}

	return users, nil
}

func (m *Memory) CreateUser(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return fmt.Errorf("%w: users_username_key", ErrDuplicate)
		}
		if existing.Email == user.Email {
			return fmt.Errorf("%w: users_email_key", ErrDuplicate)
		}
	}

	user.ID = m.nextUserID
	m.nextUserID++
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.Version = 1

	clone := *user
	m.users[user.ID] = &clone

	return nil
}

func (m *Memory) UpdateUser(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.users[user.ID]
	if !exists || existing.Version != user.Version {
		return sql.ErrNoRows
	}

	user.Version++
	user.Username = existing.Username
	user.FullName = existing.FullName
	user.CreatedAt = existing.CreatedAt

	clone := *user
	m.users[user.ID] = &clone

	return nil
}

func (m *Memory) DeleteUser(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, id)
	return nil
}

func (m *Memory) ListStaff(ownerID int64) ([]*domain.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	staff := make([]*domain.Staff, 0)
	for _, s := range m.staff {
		if s.OwnerID == ownerID {
			clone := *s
			staff = append(staff, &clone)
		}
	}

	return staff, nil
}

func (m *Memory) GetStaffByID(ownerID int64, id string) (*domain.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.staff[ownerKey(ownerID, id)]
	if !exists {
		return nil, sql.ErrNoRows
	}

	clone := *s
	return &clone, nil
}

func (m *Memory) InsertStaff(staff *domain.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ownerKey(staff.OwnerID, staff.ID)
	if _, exists := m.staff[key]; exists {
		return fmt.Errorf("%w: staff_pkey", ErrDuplicate)
	}

	staff.CreatedAt = time.Now()
	staff.Version = 1

	clone := *staff
	m.staff[key] = &clone

	return nil
}

func (m *Memory) UpdateStaff(staff *domain.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ownerKey(staff.OwnerID, staff.ID)
	existing, exists := m.staff[key]
	if !exists || existing.Version != staff.Version {
		return sql.ErrNoRows
	}

	staff.Version++
	staff.CreatedAt = existing.CreatedAt

	clone := *staff
	m.staff[key] = &clone

	return nil
}

func (m *Memory) DeleteStaff(ownerID int64, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 历史班次和业务分配保留
	delete(m.staff, ownerKey(ownerID, id))
	return nil
}

func (m *Memory) ListTaskTypes(ownerID int64) ([]*domain.TaskType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	taskTypes := make([]*domain.TaskType, 0)
	for _, t := range m.taskTypes {
		if t.OwnerID == ownerID {
			clone := *t
			taskTypes = append(taskTypes, &clone)
		}
	}

	return taskTypes, nil
}

func (m *Memory) GetTaskTypeByID(ownerID int64, id string) (*domain.TaskType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, exists := m.taskTypes[ownerKey(ownerID, id)]
	if !exists {
		return nil, sql.ErrNoRows
	}

	clone := *t
	return &clone, nil
}

func (m *Memory) InsertTaskType(taskType *domain.TaskType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ownerKey(taskType.OwnerID, taskType.ID)
	if _, exists := m.taskTypes[key]; exists {
		return fmt.Errorf("%w: task_types_pkey", ErrDuplicate)
	}

	taskType.CreatedAt = time.Now()
	taskType.Version = 1

	clone := *taskType
	m.taskTypes[key] = &clone

	return nil
}

func (m *Memory) UpdateTaskType(taskType *domain.TaskType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ownerKey(taskType.OwnerID, taskType.ID)
	existing, exists := m.taskTypes[key]
	if !exists || existing.Version != taskType.Version {
		return sql.ErrNoRows
	}

	taskType.Version++
	taskType.CreatedAt = existing.CreatedAt

	clone := *taskType
	m.taskTypes[key] = &clone

	return nil
}

func (m *Memory) DeleteTaskType(ownerID int64, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.taskTypes, ownerKey(ownerID, id))
	return nil
}

func (m *Memory) ListShifts(ownerID int64) ([]*domain.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shifts := make([]*domain.Shift, 0)
	for _, s := range m.shifts {
		if s.OwnerID == ownerID {
			clone := *s
			shifts = append(shifts, &clone)
		}
	}

	return shifts, nil
}

func (m *Memory) ListShiftsByDate(ownerID int64, date string) ([]*domain.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shifts := make([]*domain.Shift, 0)
	for _, s := range m.shifts {
		if s.OwnerID == ownerID && s.Date == date {
			clone := *s
			shifts = append(shifts, &clone)
		}
	}

	return shifts, nil
}

func (m *Memory) UpsertShift(shift *domain.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *shift
	m.shifts[ownerKey(shift.OwnerID, shift.ID)] = &clone

	return nil
}

func (m *Memory) ListRequests(ownerID int64) ([]*domain.ShiftRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	requests := make([]*domain.ShiftRequest, 0)
	for _, req := range m.requests {
		if req.OwnerID == ownerID {
			clone := *req
			requests = append(requests, &clone)
		}
	}

	return requests, nil
}

func (m *Memory) InsertRequest(request *domain.ShiftRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.requests {
		if existing.OwnerID == request.OwnerID && existing.StaffID == request.StaffID && existing.Date == request.Date {
			return fmt.Errorf("%w: shift_requests_staff_date_key", ErrDuplicate)
		}
	}

	clone := *request
	m.requests[ownerKey(request.OwnerID, request.ID)] = &clone

	return nil
}

func (m *Memory) DeleteRequest(ownerID int64, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.requests, ownerKey(ownerID, id))
	return nil
}

func (m *Memory) ListAssignments(ownerID int64) ([]*domain.TaskAssignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assignments := make([]*domain.TaskAssignment, 0)
	for _, a := range m.assigns {
		if a.OwnerID == ownerID {
			clone := *a
			assignments = append(assignments, &clone)
		}
	}

	return assignments, nil
}

func (m *Memory) ListAssignmentsByDate(ownerID int64, date string) ([]*domain.TaskAssignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assignments := make([]*domain.TaskAssignment, 0)
	for _, a := range m.assigns {
		if a.OwnerID == ownerID && a.Date == date {
			clone := *a
			assignments = append(assignments, &clone)
		}
	}

	return assignments, nil
}

func (m *Memory) InsertAssignment(assignment *domain.TaskAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insertAssignmentLocked(assignment)
}

func (m *Memory) insertAssignmentLocked(assignment *domain.TaskAssignment) error {
	key := ownerKey(assignment.OwnerID, assignment.ID)
	if _, exists := m.assigns[key]; exists {
		return fmt.Errorf("%w: task_assignments_pkey", ErrDuplicate)
	}

	clone := *assignment
	m.assigns[key] = &clone

	return nil
}

func (m *Memory) BulkInsertAssignments(assignments []*domain.TaskAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 先整体查重，保证批量插入不会只写入一半
	for _, a := range assignments {
		if _, exists := m.assigns[ownerKey(a.OwnerID, a.ID)]; exists {
			return fmt.Errorf("%w: task_assignments_pkey", ErrDuplicate)
		}
	}

	for _, a := range assignments {
		if err := m.insertAssignmentLocked(a); err != nil {
			return err
		}
	}

	return nil
}

func (m *Memory) DeleteAssignment(ownerID int64, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.assigns, ownerKey(ownerID, id))
	return nil
}

func (m *Memory) DeleteAssignmentsByDate(ownerID int64, date string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for key, a := range m.assigns {
		if a.OwnerID == ownerID && a.Date == date {
			delete(m.assigns, key)
			removed++
		}
	}

	return removed, nil
}

// ExportSnapshot 在同一把读锁下读出全部集合，
// 保证导出的是某个时间点的一致状态，不会混入并发写入的中间结果
func (m *Memory) ExportSnapshot(ownerID int64) (*domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := &domain.Snapshot{
		Staff:       make([]*domain.Staff, 0),
		TaskTypes:   make([]*domain.TaskType, 0),
		Requests:    make([]*domain.ShiftRequest, 0),
		Shifts:      make([]*domain.Shift, 0),
		Assignments: make([]*domain.TaskAssignment, 0),
	}

	for _, s := range m.staff {
		if s.OwnerID == ownerID {
			clone := *s
			snapshot.Staff = append(snapshot.Staff, &clone)
		}
	}
	for _, t := range m.taskTypes {
		if t.OwnerID == ownerID {
			clone := *t
			snapshot.TaskTypes = append(snapshot.TaskTypes, &clone)
		}
	}
	for _, req := range m.requests {
		if req.OwnerID == ownerID {
			clone := *req
			snapshot.Requests = append(snapshot.Requests, &clone)
		}
	}
	for _, s := range m.shifts {
		if s.OwnerID == ownerID {
			clone := *s
			snapshot.Shifts = append(snapshot.Shifts, &clone)
		}
	}
	for _, a := range m.assigns {
		if a.OwnerID == ownerID {
			clone := *a
			snapshot.Assignments = append(snapshot.Assignments, &clone)
		}
	}

	return snapshot, nil
}

func (m *Memory) ImportSnapshot(ownerID int64, snapshot *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, s := range m.staff {
		if s.OwnerID == ownerID {
			delete(m.staff, key)
		}
	}
	for key, t := range m.taskTypes {
		if t.OwnerID == ownerID {
			delete(m.taskTypes, key)
		}
	}
	for key, req := range m.requests {
		if req.OwnerID == ownerID {
			delete(m.requests, key)
		}
	}
	for key, s := range m.shifts {
		if s.OwnerID == ownerID {
			delete(m.shifts, key)
		}
	}
	for key, a := range m.assigns {
		if a.OwnerID == ownerID {
			delete(m.assigns, key)
		}
	}

	for _, s := range snapshot.Staff {
		clone := *s
		clone.OwnerID = ownerID
		m.staff[ownerKey(ownerID, clone.ID)] = &clone
	}
	for _, t := range snapshot.TaskTypes {
		clone := *t
		clone.OwnerID = ownerID
		m.taskTypes[ownerKey(ownerID, clone.ID)] = &clone
	}
	for _, req := range snapshot.Requests {
		clone := *req
		clone.OwnerID = ownerID
		m.requests[ownerKey(ownerID, clone.ID)] = &clone
	}
	for _, s := range snapshot.Shifts {
		clone := *s
		clone.OwnerID = ownerID
		m.shifts[ownerKey(ownerID, clone.ID)] = &clone
	}
	for _, a := range snapshot.Assignments {
		clone := *a
		clone.OwnerID = ownerID
		m.assigns[ownerKey(ownerID, clone.ID)] = &clone
	}

	return nil
}
