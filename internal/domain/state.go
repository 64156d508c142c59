package domain

import (
	"time"

	"github.com/alexanderramin/quotabank/internal/calendar"
)

// State is the single persisted counter record. LastDate is the local day
// the counters were last normalized to; TodayCount belongs to that day.
type State struct {
	LastDate   calendar.DateKey `json:"lastDate"`
	TodayCount int              `json:"todayCount"`
	WeekBank   int              `json:"weekBank"`
	WeekID     calendar.WeekID  `json:"weekId"`
}

// NewState returns a freshly initialized state for the day containing now.
func NewState(now time.Time) State {
	return State{
		LastDate: calendar.LocalDateKey(now),
		WeekID:   calendar.ISOWeekID(now),
	}
}

// Repair returns s with every missing or inconsistent field replaced by its
// initialization value. A state that is already valid comes back unchanged.
func (s State) Repair(now time.Time) State {
	today := calendar.LocalDateKey(now)

	if !s.LastDate.Valid() || s.LastDate > today {
		s.LastDate = today
	}
	if s.TodayCount < 0 {
		s.TodayCount = 0
	}
	if s.WeekBank < 0 {
		s.WeekBank = 0
	}
	if !s.WeekID.Valid() {
		last, err := calendar.ParseDateKey(s.LastDate, now.Location())
		if err != nil {
			last = now
		}
		s.WeekID = calendar.ISOWeekID(last)
	}
	return s
}

// Remaining is how much of today's quota is still unused.
func (s State) Remaining(cfg Config) int {
	return Leftover(cfg.DailyQuota, s.TodayCount)
}

// Progress is TodayCount as a fraction of the quota, capped at 1.
func (s State) Progress(cfg Config) float64 {
	if cfg.DailyQuota <= 0 {
		return 1
	}
	p := float64(s.TodayCount) / float64(cfg.DailyQuota)
	if p > 1 {
		return 1
	}
	return p
}

// AtQuota reports whether today's count has reached the quota.
func (s State) AtQuota(cfg Config) bool {
	return s.TodayCount >= cfg.DailyQuota
}
