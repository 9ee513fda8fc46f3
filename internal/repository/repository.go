package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/careshift-dev/roster-manager/backend/internal/config"
	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

// ErrDuplicate 表示插入的记录违反了唯一性约束，
// 各个后端实现都会把自己的唯一冲突错误统一转换成这个错误
var ErrDuplicate = errors.New("记录已存在")

// Repository 是持久化层的抽象契约，核心逻辑只依赖这个接口。
// 除用户账号外，所有数据都按持有者（已登录用户）划分
type Repository interface {
	// 用户账号
	GetUserByID(id int64) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	GetAllUsers() ([]*domain.User, error)
	CreateUser(user *domain.User) error
	UpdateUser(user *domain.User) error
	DeleteUser(id int64) error

	// 职员
	ListStaff(ownerID int64) ([]*domain.Staff, error)
	GetStaffByID(ownerID int64, id string) (*domain.Staff, error)
	InsertStaff(staff *domain.Staff) error
	UpdateStaff(staff *domain.Staff) error
	DeleteStaff(ownerID int64, id string) error

	// 业务类型
	ListTaskTypes(ownerID int64) ([]*domain.TaskType, error)
	GetTaskTypeByID(ownerID int64, id string) (*domain.TaskType, error)
	InsertTaskType(taskType *domain.TaskType) error
	UpdateTaskType(taskType *domain.TaskType) error
	DeleteTaskType(ownerID int64, id string) error

	// 班次（每个职员每天至多一条，ID 由 {staffId}-{date} 派生）
	ListShifts(ownerID int64) ([]*domain.Shift, error)
	ListShiftsByDate(ownerID int64, date string) ([]*domain.Shift, error)
	UpsertShift(shift *domain.Shift) error

	// 休假申请（每个职员每天至多一条）
	ListRequests(ownerID int64) ([]*domain.ShiftRequest, error)
	InsertRequest(request *domain.ShiftRequest) error
	DeleteRequest(ownerID int64, id string) error

	// 业务分配
	ListAssignments(ownerID int64) ([]*domain.TaskAssignment, error)
	ListAssignmentsByDate(ownerID int64, date string) ([]*domain.TaskAssignment, error)
	InsertAssignment(assignment *domain.TaskAssignment) error
	BulkInsertAssignments(assignments []*domain.TaskAssignment) error
	DeleteAssignment(ownerID int64, id string) error
	DeleteAssignmentsByDate(ownerID int64, date string) (int64, error)

	// 导出 / 导入
	ExportSnapshot(ownerID int64) (*domain.Snapshot, error)
	ImportSnapshot(ownerID int64, snapshot *domain.Snapshot) error
}

// NewRepository 根据配置选择后端实现
func NewRepository(cfg *config.Config, dbpool *sql.DB) (Repository, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return NewPostgres(cfg, dbpool), nil
	case "file":
		return NewFile(cfg.Storage.DataDir)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("不支持的存储后端 %q", cfg.Storage.Driver)
	}
}
