package domain

// Snapshot 是导出 / 导入接口使用的完整数据快照，用于手动跨设备迁移数据
type Snapshot struct {
	Staff       []*Staff          `json:"staff"`
	TaskTypes   []*TaskType       `json:"taskTypes"`
	Requests    []*ShiftRequest   `json:"requests"`
	Shifts      []*Shift          `json:"shifts"`
	Assignments []*TaskAssignment `json:"assignments"`
}
