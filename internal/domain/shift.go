package domain

import "fmt"

type Shift struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	ShiftType ShiftType `json:"shiftType"`
	OwnerID   int64     `json:"-"`
}

// ShiftID 通过 {staffId}-{date} 派生出 ID，保证每个职员每天至多只有一条班次记录
func ShiftID(staffID string, date string) string {
	return fmt.Sprintf("%s-%s", staffID, date)
}
