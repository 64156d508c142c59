package rollover

import (
	"time"

	"github.com/alexanderramin/quotabank/internal/calendar"
)

// Countdowns holds the time left until the next day and week boundaries.
type Countdowns struct {
	UntilMidnight time.Duration
	UntilMonday   time.Duration
}

// CountdownsAt computes both countdowns relative to now.
func CountdownsAt(now time.Time) Countdowns {
	return Countdowns{
		UntilMidnight: calendar.NextLocalMidnight(now).Sub(now),
		UntilMonday:   calendar.NextMonday00(now).Sub(now),
	}
}

// Day formats the countdown to local midnight as HH:MM:SS.
func (c Countdowns) Day() string { return calendar.HMSCountdown(c.UntilMidnight) }

// Week formats the countdown to Monday 00:00 as HH:MM:SS.
func (c Countdowns) Week() string { return calendar.HMSCountdown(c.UntilMonday) }
