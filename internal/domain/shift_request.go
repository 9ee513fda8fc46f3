package domain

type RequestType string

// 目前只有休假申请这一种类型
const RequestOff RequestType = "Off"

type ShiftRequest struct {
	ID      string      `json:"id"`
	StaffID string      `json:"staffId"`
	Date    string      `json:"date"` // YYYY-MM-DD
	Type    RequestType `json:"type"`
	OwnerID int64       `json:"-"`
}
