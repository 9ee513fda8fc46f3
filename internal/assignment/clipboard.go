package assignment

import (
	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/google/uuid"
)

// Rekey 把一组业务块复制到目标日期：每条记录换上新生成的 ID 并把日期改写为
// targetDate，职员、时刻和业务类型保持不变。
// 注意这里不会对目标日期已有的业务块做重叠检查，粘贴允许覆盖式工作流
func Rekey(items []domain.TaskAssignment, targetDate string) []*domain.TaskAssignment {
	rekeyed := make([]*domain.TaskAssignment, 0, len(items))
	for _, item := range items {
		rekeyed = append(rekeyed, &domain.TaskAssignment{
			ID:         uuid.NewString(),
			StaffID:    item.StaffID,
			Date:       targetDate,
			StartTime:  item.StartTime,
			EndTime:    item.EndTime,
			TaskTypeID: item.TaskTypeID,
		})
	}
	return rekeyed
}

// Clipboard 是剪贴板的内存形态，只保留最近一次复制的快照。
// 需要跨请求保留时由调用方对 Items 做序列化，再用 NewClipboard 恢复
type Clipboard struct {
	items []domain.TaskAssignment
}

// NewClipboard 用一份已有的快照恢复剪贴板
func NewClipboard(items []domain.TaskAssignment) *Clipboard {
	snapshot := make([]domain.TaskAssignment, len(items))
	copy(snapshot, items)
	return &Clipboard{items: snapshot}
}

// Copy 按值保存一份快照，覆盖之前的剪贴板内容
func (c *Clipboard) Copy(items []*domain.TaskAssignment) {
	snapshot := make([]domain.TaskAssignment, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, *item)
	}
	c.items = snapshot
}

// Paste 把剪贴板中的快照粘贴到目标日期，剪贴板为空时返回空切片
func (c *Clipboard) Paste(targetDate string) []*domain.TaskAssignment {
	if len(c.items) == 0 {
		return nil
	}
	return Rekey(c.items, targetDate)
}

func (c *Clipboard) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Clipboard) Items() []domain.TaskAssignment {
	return c.items
}
