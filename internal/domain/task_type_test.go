package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvertColor(t *testing.T) {
	assert.Equal(t, "#ffffff", InvertColor("#000000"))
	assert.Equal(t, "#000000", InvertColor("#ffffff"))
	assert.Equal(t, "#b03cb2", InvertColor("#4FC34D"))

	// 非法输入回退到黑色
	assert.Equal(t, "#000000", InvertColor(""))
	assert.Equal(t, "#000000", InvertColor("4FC34D"))
	assert.Equal(t, "#000000", InvertColor("#zzzzzz"))
}

func TestShiftID(t *testing.T) {
	assert.Equal(t, "staff-1-2025-01-06", ShiftID("staff-1", "2025-01-06"))
}

func TestIsValidShiftType(t *testing.T) {
	for _, def := range ShiftTypeCatalog {
		assert.True(t, IsValidShiftType(def.ID))
	}
	assert.False(t, IsValidShiftType("Overtime"))
}
