// Package calendar holds the local-date and ISO-week helpers the rollover
// engine is built on. Every function takes the instant explicitly and works
// in that instant's own location; nothing here reads the wall clock.
package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for DateKey values.
const DateLayout = "2006-01-02"

// DateKey is a local calendar date formatted as YYYY-MM-DD.
type DateKey string

// WeekID is an ISO-8601 week identifier formatted as YYYY-Www.
type WeekID string

// LocalDateKey returns the calendar date of t in t's own location.
func LocalDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateLayout))
}

// Valid reports whether k parses as a real calendar date.
func (k DateKey) Valid() bool {
	if len(k) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, string(k))
	return err == nil
}

// ParseDateKey returns local midnight of k in loc.
func ParseDateKey(k DateKey, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", k, err)
	}
	return d, nil
}

// AddDays returns local midnight n calendar days after t's date. Day
// arithmetic goes through time.Date so DST transitions never skip or repeat
// a date.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// WeekStart returns local Monday 00:00 of t's ISO week.
func WeekStart(t time.Time) time.Time {
	// Monday=0 .. Sunday=6
	back := (int(t.Weekday()) + 6) % 7
	return AddDays(t, -back)
}

// ISOWeekID returns the ISO-8601 week id of t: weeks start on Monday and
// week 01 is the week holding the year's first Thursday.
func ISOWeekID(t time.Time) WeekID {
	// Monday=0 .. Sunday=6
	dayNum := (int(t.Weekday()) + 6) % 7
	thursday := time.Date(t.Year(), t.Month(), t.Day()-dayNum+3, 12, 0, 0, 0, time.UTC)
	week := 1 + (thursday.YearDay()-1)/7
	return WeekID(fmt.Sprintf("%04d-W%02d", thursday.Year(), week))
}

// Valid reports whether w has the YYYY-Www shape with a week in 01..53.
func (w WeekID) Valid() bool {
	if len(w) != 8 || w[4] != '-' || w[5] != 'W' {
		return false
	}
	year, err := strconv.Atoi(string(w[:4]))
	if err != nil || year <= 0 {
		return false
	}
	week, err := strconv.Atoi(string(w[6:]))
	if err != nil {
		return false
	}
	return week >= 1 && week <= 53
}

// HMSCountdown formats d as zero-padded HH:MM:SS. Negative durations clamp
// to zero and hours are not wrapped at 24.
func HMSCountdown(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// NextLocalMidnight returns the first local midnight strictly after t.
func NextLocalMidnight(t time.Time) time.Time {
	return AddDays(t, 1)
}

// NextMonday00 returns the first local Monday 00:00 strictly after t.
// A Monday (including Monday 00:00 exactly) maps to the following Monday.
func NextMonday00(t time.Time) time.Time {
	// Sunday=7, Monday=1 .. Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	add := (8 - wd) % 7
	if add == 0 {
		add = 7
	}
	return AddDays(t, add)
}

// IsMonday reports whether t falls on a Monday in its location.
func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}
