package domain

type TaskAssignment struct {
	ID         string `json:"id"`
	StaffID    string `json:"staffId"`
	Date       string `json:"date"`      // YYYY-MM-DD
	StartTime  string `json:"startTime"` // HH:mm
	EndTime    string `json:"endTime"`   // HH:mm
	TaskTypeID string `json:"taskTypeId"`
	OwnerID    int64  `json:"-"`
}
