package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

// File 是文件后端：每个集合对应一个 JSON 文档，
// 启动时整体读入内存，每次变更后把受影响的集合整体写回。
// 读写都经过内存实现，语义和其他后端一致
type File struct {
	*Memory
	dataDir string
}

const (
	usersFile       = "users.json"
	staffFile       = "staff.json"
	taskTypesFile   = "task-types.json"
	shiftsFile      = "shifts.json"
	requestsFile    = "requests.json"
	assignmentsFile = "assignments.json"
)

// JSON 标签为 "-" 的字段（持有者、密码哈希、版本号）不会随实体本身序列化，
// 落盘时需要用这些文档结构补全
type userDocument struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"version"`
}

type ownedDocument[T any] struct {
	OwnerID int64 `json:"ownerId"`
	Version int32 `json:"version,omitempty"`
	Record  T     `json:"record"`
}

func NewFile(dataDir string) (*File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	f := &File{
		Memory:  NewMemory(),
		dataDir: dataDir,
	}

	if err := f.loadAll(); err != nil {
		return nil, err
	}

	return f, nil
}

func readDocument[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// 文档不存在视为空集合
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("无法解析 %s: %w", filepath.Base(path), err)
	}

	return records, nil
}

func writeDocument[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (f *File) loadAll() error {
	users, err := readDocument[userDocument](filepath.Join(f.dataDir, usersFile))
	if err != nil {
		return err
	}
	for _, doc := range users {
		f.users[doc.ID] = &domain.User{
			ID:           doc.ID,
			Username:     doc.Username,
			PasswordHash: doc.PasswordHash,
			FullName:     doc.FullName,
			Email:        doc.Email,
			Role:         domain.Role(doc.Role),
			IsActive:     doc.IsActive,
			CreatedAt:    doc.CreatedAt,
			Version:      doc.Version,
		}
		if doc.ID >= f.nextUserID {
			f.nextUserID = doc.ID + 1
		}
	}

	staff, err := readDocument[ownedDocument[*domain.Staff]](filepath.Join(f.dataDir, staffFile))
	if err != nil {
		return err
	}
	for _, doc := range staff {
		doc.Record.OwnerID = doc.OwnerID
		doc.Record.Version = doc.Version
		f.staff[ownerKey(doc.OwnerID, doc.Record.ID)] = doc.Record
	}

	taskTypes, err := readDocument[ownedDocument[*domain.TaskType]](filepath.Join(f.dataDir, taskTypesFile))
	if err != nil {
		return err
	}
	for _, doc := range taskTypes {
		doc.Record.OwnerID = doc.OwnerID
		doc.Record.Version = doc.Version
		f.taskTypes[ownerKey(doc.OwnerID, doc.Record.ID)] = doc.Record
	}

	shifts, err := readDocument[ownedDocument[*domain.Shift]](filepath.Join(f.dataDir, shiftsFile))
	if err != nil {
		return err
	}
	for _, doc := range shifts {
		doc.Record.OwnerID = doc.OwnerID
		f.shifts[ownerKey(doc.OwnerID, doc.Record.ID)] = doc.Record
	}

	requests, err := readDocument[ownedDocument[*domain.ShiftRequest]](filepath.Join(f.dataDir, requestsFile))
	if err != nil {
		return err
	}
	for _, doc := range requests {
		doc.Record.OwnerID = doc.OwnerID
		f.requests[ownerKey(doc.OwnerID, doc.Record.ID)] = doc.Record
	}

	assignments, err := readDocument[ownedDocument[*domain.TaskAssignment]](filepath.Join(f.dataDir, assignmentsFile))
	if err != nil {
		return err
	}
	for _, doc := range assignments {
		doc.Record.OwnerID = doc.OwnerID
		f.assigns[ownerKey(doc.OwnerID, doc.Record.ID)] = doc.Record
	}

	return nil
}

func (f *File) saveUsers() error {
	f.mu.RLock()
	docs := make([]userDocument, 0, len(f.users))
	for _, user := range f.users {
		docs = append(docs, userDocument{
			ID:           user.ID,
			Username:     user.Username,
			PasswordHash: user.PasswordHash,
			FullName:     user.FullName,
			Email:        user.Email,
			Role:         string(user.Role),
			IsActive:     user.IsActive,
			CreatedAt:    user.CreatedAt,
			Version:      user.Version,
		})
	}
	f.mu.RUnlock()

	return writeDocument(filepath.Join(f.dataDir, usersFile), docs)
}

func (f *File) saveStaff() error {
	f.mu.RLock()
	docs := make([]ownedDocument[*domain.Staff], 0, len(f.staff))
	for _, s := range f.staff {
		docs = append(docs, ownedDocument[*domain.Staff]{OwnerID: s.OwnerID, Version: s.Version, Record: s})
	}
	f.mu.RUnlock()

	return writeDocument(filepath.Join(f.dataDir, staffFile), docs)
}

func (f *File) saveTaskTypes() error {
	f.mu.RLock()
	docs := make([]ownedDocument[*domain.TaskType], 0, len(f.taskTypes))
	for _, t := range f.taskTypes {
		docs = append(docs, ownedDocument[*domain.TaskType]{OwnerID: t.OwnerID, Version: t.Version, Record: t})
	}
	f.mu.RUnlock()

	return writeDocument(filepath.Join(f.dataDir, taskTypesFile), docs)
}

func (f *File) saveShifts() error {
	f.mu.RLock()
	docs := make([]ownedDocument[*domain.Shift], 0, len(f.shifts))
	for _, s := range f.shifts {
		docs = append(docs, ownedDocument[*domain.Shift]{OwnerID: s.OwnerID, Record: s})
	}
	f.mu.RUnlock()

	return writeDocument(filepath.Join(f.dataDir, shiftsFile), docs)
}

func (f *File) saveRequests() error {
	f.mu.RLock()
	docs := make([]ownedDocument[*domain.ShiftRequest], 0, len(f.requests))
	for _, req := range f.requests {
		docs = append(docs, ownedDocument[*domain.ShiftRequest]{OwnerID: req.OwnerID, Record: req})
	}
	f.mu.RUnlock()

	return writeDocument(filepath.Join(f.dataDir, requestsFile), docs)
}

func (f *File) saveAssignments() error {
	f.mu.RLock()
	docs := make([]ownedDocument[*domain.TaskAssignment], 0, len(f.assigns))
	for _, a := range f.assigns {
		docs = append(docs, ownedDocument[*domain.TaskAssignment]{OwnerID: a.OwnerID, Record: a})
	}
	f.mu.RUnlock()

	return writeDocument(filepath.Join(f.dataDir, assignmentsFile), docs)
}

func (f *File) CreateUser(user *domain.User) error {
	if err := f.Memory.CreateUser(user); err != nil {
		return err
	}
	return f.saveUsers()
}

func (f *File) UpdateUser(user *domain.User) error {
	if err := f.Memory.UpdateUser(user); err != nil {
		return err
	}
	return f.saveUsers()
}

func (f *File) DeleteUser(id int64) error {
	if err := f.Memory.DeleteUser(id); err != nil {
		return err
	}
	return f.saveUsers()
}

func (f *File) InsertStaff(staff *domain.Staff) error {
	if err := f.Memory.InsertStaff(staff); err != nil {
		return err
	}
	return f.saveStaff()
}

func (f *File) UpdateStaff(staff *domain.Staff) error {
	if err := f.Memory.UpdateStaff(staff); err != nil {
		return err
	}
	return f.saveStaff()
}

func (f *File) DeleteStaff(ownerID int64, id string) error {
	if err := f.Memory.DeleteStaff(ownerID, id); err != nil {
		return err
	}
	return f.saveStaff()
}

func (f *File) InsertTaskType(taskType *domain.TaskType) error {
	if err := f.Memory.InsertTaskType(taskType); err != nil {
		return err
	}
	return f.saveTaskTypes()
}

func (f *File) UpdateTaskType(taskType *domain.TaskType) error {
	if err := f.Memory.UpdateTaskType(taskType); err != nil {
		return err
	}
	return f.saveTaskTypes()
}

func (f *File) DeleteTaskType(ownerID int64, id string) error {
	if err := f.Memory.DeleteTaskType(ownerID, id); err != nil {
		return err
	}
	return f.saveTaskTypes()
}

func (f *File) UpsertShift(shift *domain.Shift) error {
	if err := f.Memory.UpsertShift(shift); err != nil {
		return err
	}
	return f.saveShifts()
}

func (f *File) InsertRequest(request *domain.ShiftRequest) error {
	if err := f.Memory.InsertRequest(request); err != nil {
		return err
	}
	return f.saveRequests()
}

func (f *File) DeleteRequest(ownerID int64, id string) error {
	if err := f.Memory.DeleteRequest(ownerID, id); err != nil {
		return err
	}
	return f.saveRequests()
}

func (f *File) InsertAssignment(assignment *domain.TaskAssignment) error {
	if err := f.Memory.InsertAssignment(assignment); err != nil {
		return err
	}
	return f.saveAssignments()
}

func (f *File) BulkInsertAssignments(assignments []*domain.TaskAssignment) error {
	if err := f.Memory.BulkInsertAssignments(assignments); err != nil {
		return err
	}
	return f.saveAssignments()
}

func (f *File) DeleteAssignment(ownerID int64, id string) error {
	if err := f.Memory.DeleteAssignment(ownerID, id); err != nil {
		return err
	}
	return f.saveAssignments()
}

func (f *File) DeleteAssignmentsByDate(ownerID int64, date string) (int64, error) {
	removed, err := f.Memory.DeleteAssignmentsByDate(ownerID, date)
	if err != nil {
		return 0, err
	}
	return removed, f.saveAssignments()
}

func (f *File) ImportSnapshot(ownerID int64, snapshot *domain.Snapshot) error {
	if err := f.Memory.ImportSnapshot(ownerID, snapshot); err != nil {
		return err
	}

	if err := f.saveStaff(); err != nil {
		return err
	}
	if err := f.saveTaskTypes(); err != nil {
		return err
	}
	if err := f.saveRequests(); err != nil {
		return err
	}
	if err := f.saveShifts(); err != nil {
		return err
	}
	return f.saveAssignments()
}
