package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/quotabank/internal/domain"
)

// KVConfigRepo stores domain.Config as JSON under ConfigKey.
type KVConfigRepo struct {
	kv KVStore
}

// NewKVConfigRepo creates a ConfigRepo on top of kv.
func NewKVConfigRepo(kv KVStore) *KVConfigRepo {
	return &KVConfigRepo{kv: kv}
}

func (r *KVConfigRepo) Load(ctx context.Context) (domain.Config, error) {
	raw, err := r.kv.Get(ctx, ConfigKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), fmt.Errorf("loading config: %w", err)
	}

	var cfg domain.Config
	if !decodeRecord(raw, &cfg) || cfg.DailyQuota == 0 {
		return domain.DefaultConfig(), nil
	}
	return cfg.Normalized(), nil
}

func (r *KVConfigRepo) Save(ctx context.Context, cfg domain.Config) error {
	raw, err := encodeRecord(cfg.Normalized())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := r.kv.Put(ctx, ConfigKey, raw); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// KVStateRepo stores domain.State as JSON under StateKey.
type KVStateRepo struct {
	kv KVStore
}

// NewKVStateRepo creates a StateRepo on top of kv.
func NewKVStateRepo(kv KVStore) *KVStateRepo {
	return &KVStateRepo{kv: kv}
}

// Load also reports whether the returned state differs from what is stored
// (missing, unreadable or repaired), so the caller knows to write it back.
func (r *KVStateRepo) Load(ctx context.Context, now time.Time) (domain.State, bool, error) {
	raw, err := r.kv.Get(ctx, StateKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.NewState(now), true, nil
		}
		return domain.NewState(now), false, fmt.Errorf("loading state: %w", err)
	}

	var s domain.State
	if !decodeRecord(raw, &s) {
		return domain.NewState(now), true, nil
	}
	repaired := s.Repair(now)
	return repaired, repaired != s, nil
}

func (r *KVStateRepo) Save(ctx context.Context, s domain.State) error {
	raw, err := encodeRecord(s)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := r.kv.Put(ctx, StateKey, raw); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}
