// Package rollover reconciles the persisted counter state against the
// configured quota and the current instant.
//
// All functions are pure: the caller supplies now, and nothing here reads
// the wall clock or touches storage.
package rollover

import (
	"time"

	"github.com/alexanderramin/quotabank/internal/calendar"
	"github.com/alexanderramin/quotabank/internal/domain"
)

// Reconcile folds every day between state.LastDate and today into the week
// bank and returns a state whose LastDate is today.
//
// The walk is one calendar day at a time, starting no earlier than this
// week's Monday. The first walked day consumed
// state.TodayCount; later days were never opened and consumed nothing. After
// each step, landing on a Monday empties the bank and moves WeekID to the new
// week, so a Sunday's leftover is banked into the week it belongs to before
// the reset.
func Reconcile(state domain.State, cfg domain.Config, now time.Time) domain.State {
	state = state.Repair(now)
	today := calendar.LocalDateKey(now)
	if state.LastDate == today {
		return state
	}

	quota := cfg.Normalized().DailyQuota

	cursor, err := calendar.ParseDateKey(state.LastDate, now.Location())
	if err != nil {
		// Repair guarantees a parseable key.
		return domain.NewState(now)
	}
	consumed := state.TodayCount

	// Crossing this week's Monday empties the bank, so a gap that starts
	// before it can begin the walk there.
	if monday := calendar.WeekStart(now); cursor.Before(monday) {
		cursor = monday
		consumed = 0
		state.WeekBank = 0
		state.WeekID = calendar.ISOWeekID(monday)
	}

	for calendar.LocalDateKey(cursor) < today {
		state.WeekBank += domain.Leftover(quota, consumed)
		consumed = 0

		cursor = calendar.AddDays(cursor, 1)
		if calendar.IsMonday(cursor) {
			state.WeekBank = 0
			state.WeekID = calendar.ISOWeekID(cursor)
		}
	}

	state.TodayCount = 0
	state.LastDate = today
	return state
}

// NeedsRollover reports whether state is stale relative to now.
func NeedsRollover(state domain.State, now time.Time) bool {
	return state.LastDate != calendar.LocalDateKey(now)
}

// Increment adds one unit to today's count. It reports false and leaves the
// state untouched once the quota is reached.
func Increment(state domain.State, cfg domain.Config) (domain.State, bool) {
	if state.AtQuota(cfg.Normalized()) {
		return state, false
	}
	state.TodayCount++
	return state, true
}

// Decrement removes one unit from today's count. It reports false when the
// count is already zero.
func Decrement(state domain.State) (domain.State, bool) {
	if state.TodayCount <= 0 {
		return state, false
	}
	state.TodayCount--
	return state, true
}

// CloseDay banks today's leftover immediately and starts a fresh day count.
// Unlike Reconcile it folds exactly one day and never checks for a Monday
// crossing.
func CloseDay(state domain.State, cfg domain.Config, now time.Time) domain.State {
	state = state.Repair(now)
	state.WeekBank += domain.Leftover(cfg.Normalized().DailyQuota, state.TodayCount)
	state.TodayCount = 0
	state.LastDate = calendar.LocalDateKey(now)
	return state
}

// ResetWeek discards the banked leftover and pins the bank to now's week.
func ResetWeek(state domain.State, now time.Time) domain.State {
	state = state.Repair(now)
	state.WeekBank = 0
	state.WeekID = calendar.ISOWeekID(now)
	return state
}
