package assignment

import (
	"fmt"
	"strconv"
)

const minutesPerDay = 24 * 60

// ParseClock 把 HH:mm 形式的时刻解析为从零点开始的分钟数。
// 业务块允许任意分钟值，不要求对齐到画面上的 30 分钟网格。
// "24:00" 表示当天结束，业务块在零点整结束时终点就是这个值
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("时刻 %q 的格式错误，应为 HH:mm", s)
	}

	if s == "24:00" {
		return minutesPerDay, nil
	}

	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("时刻 %q 的小时部分无效", s)
	}

	minute, err := strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("时刻 %q 的分钟部分无效", s)
	}

	return hour*60 + minute, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
