package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/quotabank/internal/domain"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

// Keys of the two persisted records.
const (
	ConfigKey = "qc_cfg"
	StateKey  = "qc_state"
)

// KVStore is a synchronous string-keyed text store.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// ConfigRepo loads and saves the configuration record. Load never fails on
// missing or malformed data; it substitutes domain.DefaultConfig.
type ConfigRepo interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
}

// StateRepo loads and saves the counter state. Load never fails on missing
// or malformed data; it substitutes a fresh state for now and reports it as
// stale.
type StateRepo interface {
	Load(ctx context.Context, now time.Time) (domain.State, bool, error)
	Save(ctx context.Context, s domain.State) error
}
