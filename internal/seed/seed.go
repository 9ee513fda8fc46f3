package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
	"github.com/careshift-dev/roster-manager/backend/internal/repository"
	"github.com/google/uuid"
)

// 介护设施的标准业务类型目录，名称保留客户方使用的日文
var defaultTaskTypes = []domain.TaskType{
	{ID: "task-1", Name: "食事介助 (朝)", Color: "#FFB74D", Duration: 60},
	{ID: "task-2", Name: "食事介助 (昼)", Color: "#FFB74D", Duration: 60},
	{ID: "task-3", Name: "食事介助 (夕)", Color: "#FFB74D", Duration: 60},
	{ID: "task-4", Name: "入浴介助", Color: "#4FC3F7", Duration: 60},
	{ID: "task-5", Name: "排泄介助", Color: "#81C784", Duration: 30},
	{ID: "task-6", Name: "レクリエーション", Color: "#BA68C8", Duration: 60},
	{ID: "task-7", Name: "バイタルチェック", Color: "#E57373", Duration: 60},
	{ID: "task-8", Name: "巡回", Color: "#90A4AE", Duration: 30},
	{ID: "task-9", Name: "記録作成", Color: "#7986CB", Duration: 60},
	{ID: "task-10", Name: "清掃・消毒", Color: "#4DB6AC", Duration: 30},
}

// SeedTaskTypes 为指定用户插入默认业务类型目录
func SeedTaskTypes(repo repository.Repository, ownerID int64) int {
	cnt := 0
	for _, t := range defaultTaskTypes {
		taskType := t
		taskType.OwnerID = ownerID
		taskType.TextColor = "#000000"

		if err := repo.InsertTaskType(&taskType); err != nil {
			slog.Error("无法插入业务类型", "id", taskType.ID, "error", err)
			continue
		}
		cnt++
	}
	return cnt
}

// SeedStaff 为指定用户插入 n 个演示用职员（職員 1 .. 職員 n）
func SeedStaff(repo repository.Repository, ownerID int64, n int) int {
	cnt := 0
	for i := 1; i <= n; i++ {
		staff := &domain.Staff{
			ID:      fmt.Sprintf("staff-%d", i),
			Name:    fmt.Sprintf("職員 %d", i),
			OwnerID: ownerID,
		}

		if err := repo.InsertStaff(staff); err != nil {
			slog.Error("无法插入职员", "id", staff.ID, "error", err)
			continue
		}
		cnt++
	}
	return cnt
}

// SeedDemoMonth 为指定月份生成演示排班：
// 每个职员随机安排一部分显式班次和少量休假申请
func SeedDemoMonth(repo repository.Repository, ownerID int64, year int, month time.Month) {
	staff, err := repo.ListStaff(ownerID)
	if err != nil {
		slog.Error("无法获取职员列表", "error", err)
		return
	}

	categories := []domain.ShiftType{domain.ShiftDay, domain.ShiftEarly, domain.ShiftLate, domain.ShiftNight}
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	shiftCnt := 0
	requestCnt := 0
	for _, s := range staff {
		for day := 1; day <= daysInMonth; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

			switch rand.Intn(10) {
			case 0, 1, 2:
				// 显式班次
				shift := &domain.Shift{
					ID:        domain.ShiftID(s.ID, date),
					StaffID:   s.ID,
					Date:      date,
					ShiftType: categories[rand.Intn(len(categories))],
					OwnerID:   ownerID,
				}
				if err := repo.UpsertShift(shift); err != nil {
					slog.Error("无法插入班次", "id", shift.ID, "error", err)
					continue
				}
				shiftCnt++
			case 3:
				// 休假申请
				request := &domain.ShiftRequest{
					ID:      uuid.NewString(),
					StaffID: s.ID,
					Date:    date,
					Type:    domain.RequestOff,
					OwnerID: ownerID,
				}
				if err := repo.InsertRequest(request); err != nil {
					slog.Error("无法插入休假申请", "id", request.ID, "error", err)
					continue
				}
				requestCnt++
			}
		}
	}

	slog.Info("演示排班生成完成", "shifts", shiftCnt, "requests", requestCnt)
}
