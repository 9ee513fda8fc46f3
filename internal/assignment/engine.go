package assignment

import (
	"errors"
	"fmt"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/google/uuid"
)

// ErrConflict 表示新业务块与同一职员同一天已有的业务块时间重叠
var ErrConflict = errors.New("与已有业务的时间重叠")

// Place 为职员在某天放置一个业务块。
// 结束时刻由开始时刻加上业务类型的时长算出，不支持跨天。
// 放置前会对该职员当天已有的业务块做重叠检查，冲突时不产生任何变更
func Place(existing []*domain.TaskAssignment, staffID string, date string, startTime string, taskType *domain.TaskType) (*domain.TaskAssignment, error) {
	if taskType.Duration <= 0 {
		return nil, fmt.Errorf("业务类型 %s 的时长无效", taskType.ID)
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return nil, err
	}

	end := start + taskType.Duration
	if end > minutesPerDay {
		return nil, errors.New("业务块不能跨天")
	}

	for _, a := range existing {
		if a.StaffID != staffID || a.Date != date {
			continue
		}

		aStart, err := ParseClock(a.StartTime)
		if err != nil {
			return nil, err
		}
		aEnd, err := ParseClock(a.EndTime)
		if err != nil {
			return nil, err
		}

		// 区间均为左闭右开
		if start < aEnd && end > aStart {
			return nil, ErrConflict
		}
	}

	return &domain.TaskAssignment{
		ID:         uuid.NewString(),
		StaffID:    staffID,
		Date:       date,
		StartTime:  FormatClock(start),
		EndTime:    FormatClock(end),
		TaskTypeID: taskType.ID,
	}, nil
}

// FindAtClick 找出覆盖被点击时刻的业务块，用于点击已填充的格子时将其删除。
// 没有覆盖该时刻的业务块时返回 false，调用方应当作 no-op 处理
func FindAtClick(existing []*domain.TaskAssignment, staffID string, date string, clickedTime string) (*domain.TaskAssignment, bool) {
	clicked, err := ParseClock(clickedTime)
	if err != nil {
		return nil, false
	}

	for _, a := range existing {
		if a.StaffID != staffID || a.Date != date {
			continue
		}

		start, err := ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(a.EndTime)
		if err != nil {
			continue
		}

		if clicked >= start && clicked < end {
			return a, true
		}
	}

	return nil, false
}
