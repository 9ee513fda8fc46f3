package domain

type ShiftType string

const (
	ShiftDay   ShiftType = "Day"
	ShiftOff   ShiftType = "Off"
	ShiftEarly ShiftType = "Early"
	ShiftLate  ShiftType = "Late"
	ShiftNight ShiftType = "Night"
)

type ShiftTypeDefinition struct {
	ID    ShiftType `json:"id"`
	Label string    `json:"label"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// 班次类别目录是固定的，不允许用户编辑
var ShiftTypeCatalog = []ShiftTypeDefinition{
	{ID: ShiftDay, Label: "日", Name: "日勤", Color: "#ffffff"},
	{ID: ShiftOff, Label: "休", Name: "公休", Color: "#e2e8f0"},
	{ID: ShiftEarly, Label: "早", Name: "早番", Color: "#fef9c3"},
	{ID: ShiftLate, Label: "遅", Name: "遅番", Color: "#ffedd5"},
	{ID: ShiftNight, Label: "夜", Name: "夜勤", Color: "#e0e7ff"},
}

func IsValidShiftType(t ShiftType) bool {
	for _, def := range ShiftTypeCatalog {
		if def.ID == t {
			return true
		}
	}
	return false
}
