package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/quotabank/internal/calendar"
	"github.com/alexanderramin/quotabank/internal/domain"
	"github.com/alexanderramin/quotabank/internal/repository"
)

// Day returns local midnight of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// At returns the given local date and hour.
func At(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

// State options
type StateOption func(*domain.State)

func WithTodayCount(n int) StateOption {
	return func(s *domain.State) { s.TodayCount = n }
}

func WithWeekBank(n int) StateOption {
	return func(s *domain.State) { s.WeekBank = n }
}

func WithWeekID(w calendar.WeekID) StateOption {
	return func(s *domain.State) { s.WeekID = w }
}

// NewTestState builds a valid state last normalized on the day of at.
func NewTestState(at time.Time, opts ...StateOption) domain.State {
	s := domain.NewState(at)
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// SeedState writes s directly into the store.
func SeedState(t *testing.T, database *sql.DB, s domain.State) {
	t.Helper()
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("encoding state: %v", err)
	}
	SeedRaw(t, database, repository.StateKey, string(raw))
}

// SeedConfig writes cfg directly into the store, bypassing clamping.
func SeedConfig(t *testing.T, database *sql.DB, cfg domain.Config) {
	t.Helper()
	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("encoding config: %v", err)
	}
	SeedRaw(t, database, repository.ConfigKey, string(raw))
}

// SeedRaw writes an arbitrary value, including corrupt documents.
func SeedRaw(t *testing.T, database *sql.DB, key, value string) {
	t.Helper()
	if err := repository.NewSQLiteKVStore(database).Put(context.Background(), key, value); err != nil {
		t.Fatalf("seeding %s: %v", key, err)
	}
}

// StoredState decodes the state currently in the store.
func StoredState(t *testing.T, database *sql.DB) domain.State {
	t.Helper()
	raw, err := repository.NewSQLiteKVStore(database).Get(context.Background(), repository.StateKey)
	if err != nil {
		t.Fatalf("reading stored state: %v", err)
	}
	var s domain.State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("decoding stored state: %v", err)
	}
	return s
}
