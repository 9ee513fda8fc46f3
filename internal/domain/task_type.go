package domain

import (
	"fmt"
	"strconv"
	"time"
)

type TaskType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	TextColor string    `json:"textColor,omitempty"`
	Duration  int       `json:"duration"` // 以分钟为单位
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// InvertColor 计算 #rrggbb 颜色按位取反后的颜色，用于在未指定文字颜色时自动推导
func InvertColor(color string) string {
	if len(color) != 7 || color[0] != '#' {
		return "#000000"
	}

	rgb, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return "#000000"
	}

	return fmt.Sprintf("#%06x", ^uint32(rgb)&0xffffff)
}
