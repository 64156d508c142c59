package domain

const (
	MinDailyQuota     = 1
	MaxDailyQuota     = 99
	DefaultDailyQuota = 9
)

// Config is the user-editable configuration record.
type Config struct {
	DailyQuota int `json:"dailyQuota"`
}

// DefaultConfig returns the configuration used on first run and whenever
// the stored record is missing or unreadable.
func DefaultConfig() Config {
	return Config{DailyQuota: DefaultDailyQuota}
}

// ClampQuota forces v into [MinDailyQuota, MaxDailyQuota].
func ClampQuota(v int) int {
	if v < MinDailyQuota {
		return MinDailyQuota
	}
	if v > MaxDailyQuota {
		return MaxDailyQuota
	}
	return v
}

// Normalized returns c with its quota clamped into range.
func (c Config) Normalized() Config {
	c.DailyQuota = ClampQuota(c.DailyQuota)
	return c
}

// Leftover is the unused part of a day's quota.
func Leftover(quota, consumed int) int {
	if consumed >= quota {
		return 0
	}
	return quota - consumed
}
