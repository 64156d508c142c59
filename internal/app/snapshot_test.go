package app

import (
	"testing"
	"time"

	"github.com/alexanderramin/quotabank/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot(t *testing.T) {
	// Saturday evening.
	now := time.Date(2024, 6, 15, 22, 30, 0, 0, time.Local)
	cfg := domain.Config{DailyQuota: 9}
	state := domain.State{LastDate: "2024-06-15", TodayCount: 3, WeekBank: 12, WeekID: "2024-W24"}

	snap := NewSnapshot(cfg, state, now)

	assert.Equal(t, 6, snap.Remaining)
	assert.InDelta(t, 1.0/3.0, snap.Progress, 1e-9)
	assert.Equal(t, 90*time.Minute, snap.UntilMidnight)
	assert.Equal(t, 24*time.Hour+90*time.Minute, snap.UntilMonday)
	assert.Equal(t, "01:30:00", snap.Countdowns().Day())
	assert.False(t, snap.AtQuota())
}

func TestSnapshot_AtQuota(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	snap := NewSnapshot(domain.Config{DailyQuota: 2}, domain.State{LastDate: "2024-06-10", TodayCount: 2, WeekID: "2024-W24"}, now)

	assert.True(t, snap.AtQuota())
	assert.Zero(t, snap.Remaining)
	assert.Equal(t, 1.0, snap.Progress)
}
