package domain

import (
	"testing"
	"time"

	"github.com/alexanderramin/quotabank/internal/calendar"
	"github.com/stretchr/testify/assert"
)

var tuesdayNoon = time.Date(2024, 6, 11, 12, 0, 0, 0, time.Local)

func TestClampQuota(t *testing.T) {
	assert.Equal(t, 99, ClampQuota(150))
	assert.Equal(t, 1, ClampQuota(0))
	assert.Equal(t, 1, ClampQuota(-7))
	assert.Equal(t, 42, ClampQuota(42))
	assert.Equal(t, 1, ClampQuota(1))
	assert.Equal(t, 99, ClampQuota(99))
}

func TestConfig_Normalized(t *testing.T) {
	assert.Equal(t, Config{DailyQuota: 99}, Config{DailyQuota: 1000}.Normalized())
	assert.Equal(t, Config{DailyQuota: 1}, Config{}.Normalized())
	assert.Equal(t, DefaultDailyQuota, DefaultConfig().DailyQuota)
}

func TestLeftover(t *testing.T) {
	assert.Equal(t, 6, Leftover(9, 3))
	assert.Equal(t, 9, Leftover(9, 0))
	assert.Equal(t, 0, Leftover(9, 9))
	assert.Equal(t, 0, Leftover(9, 12), "overshoot never goes negative")
}

func TestNewState(t *testing.T) {
	s := NewState(tuesdayNoon)
	assert.Equal(t, calendar.DateKey("2024-06-11"), s.LastDate)
	assert.Equal(t, calendar.WeekID("2024-W24"), s.WeekID)
	assert.Zero(t, s.TodayCount)
	assert.Zero(t, s.WeekBank)
}

func TestState_Repair(t *testing.T) {
	tests := []struct {
		name string
		in   State
		want State
	}{
		{
			name: "valid state untouched",
			in:   State{LastDate: "2024-06-10", TodayCount: 3, WeekBank: 4, WeekID: "2024-W24"},
			want: State{LastDate: "2024-06-10", TodayCount: 3, WeekBank: 4, WeekID: "2024-W24"},
		},
		{
			name: "zero value becomes fresh state",
			in:   State{},
			want: State{LastDate: "2024-06-11", WeekID: "2024-W24"},
		},
		{
			name: "future last date pulled back to today",
			in:   State{LastDate: "2030-01-01", TodayCount: 2, WeekID: "2030-W01"},
			want: State{LastDate: "2024-06-11", TodayCount: 2, WeekID: "2030-W01"},
		},
		{
			name: "negative counters zeroed",
			in:   State{LastDate: "2024-06-11", TodayCount: -1, WeekBank: -20, WeekID: "2024-W24"},
			want: State{LastDate: "2024-06-11", WeekID: "2024-W24"},
		},
		{
			name: "missing week derived from last date",
			in:   State{LastDate: "2024-06-03", TodayCount: 1},
			want: State{LastDate: "2024-06-03", TodayCount: 1, WeekID: "2024-W23"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Repair(tuesdayNoon))
		})
	}
}

func TestState_RemainingAndProgress(t *testing.T) {
	cfg := Config{DailyQuota: 8}

	s := State{TodayCount: 2}
	assert.Equal(t, 6, s.Remaining(cfg))
	assert.InDelta(t, 0.25, s.Progress(cfg), 1e-9)
	assert.False(t, s.AtQuota(cfg))

	s.TodayCount = 11
	assert.Equal(t, 0, s.Remaining(cfg))
	assert.Equal(t, 1.0, s.Progress(cfg))
	assert.True(t, s.AtQuota(cfg))
}
