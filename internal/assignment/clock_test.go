package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "09:37", want: 577}, // 不要求对齐到 30 分钟网格
		{in: "24:00", want: 1440}, // 当天结束
		{in: "24:01", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "0930", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			assert.Error(t, err, "输入 %q", c.in)
			continue
		}
		assert.NoError(t, err, "输入 %q", c.in)
		assert.Equal(t, c.want, got, "输入 %q", c.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "24:00", FormatClock(1440))
}
