package service

import (
	"context"
	"time"

	"github.com/alexanderramin/quotabank/internal/app"
	"github.com/alexanderramin/quotabank/internal/clock"
	"github.com/alexanderramin/quotabank/internal/domain"
	"github.com/alexanderramin/quotabank/internal/repository"
	"github.com/alexanderramin/quotabank/internal/rollover"
	"github.com/google/uuid"
)

type counterService struct {
	uow      repository.UnitOfWork
	clock    clock.Clock
	observer UseCaseObserver
}

func NewCounterService(uow repository.UnitOfWork, clk clock.Clock, observers ...UseCaseObserver) CounterService {
	if clk == nil {
		clk = clock.System{}
	}
	return &counterService{
		uow:      uow,
		clock:    clk,
		observer: useCaseObserverOrNoop(observers),
	}
}

// txRepos are the record stores bound to one transaction.
type txRepos repository.Stores

// loaded is the config and repaired state as read at the start of a use case.
// stale marks a state that does not match the stored record yet.
type loaded struct {
	cfg   domain.Config
	state domain.State
	stale bool
	now   time.Time
}

func (r txRepos) load(ctx context.Context, now time.Time) (loaded, error) {
	cfg, err := r.Config.Load(ctx)
	if err != nil {
		return loaded{}, err
	}
	st, stale, err := r.State.Load(ctx, now)
	if err != nil {
		return loaded{}, err
	}
	return loaded{cfg: cfg, state: st, stale: stale, now: now}, nil
}

// reconcile rolls l.state forward to l.now and persists it when anything
// changed or the stored record was missing. It reports whether a day
// boundary was crossed.
func (r txRepos) reconcile(ctx context.Context, l *loaded) (bool, error) {
	rolled := rollover.NeedsRollover(l.state, l.now)
	next := rollover.Reconcile(l.state, l.cfg, l.now)
	if next == l.state && !l.stale {
		return false, nil
	}
	l.state = next
	return rolled, r.save(ctx, l)
}

func (r txRepos) save(ctx context.Context, l *loaded) error {
	l.stale = false
	return r.State.Save(ctx, l.state)
}

// run executes fn in a transaction and reports the outcome to the observer.
func (s *counterService) run(ctx context.Context, name string, fields map[string]any, fn func(ctx context.Context, repos txRepos, l *loaded) error) (snap app.Snapshot, err error) {
	startedAt := time.Now().UTC()
	fields["op_id"] = uuid.New().String()
	defer func() {
		if err == nil {
			fields["today_count"] = snap.State.TodayCount
			fields["week_bank"] = snap.State.WeekBank
			fields["week_id"] = string(snap.State.WeekID)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := s.clock.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, st repository.Stores) error {
		repos := txRepos(st)
		l, err := repos.load(ctx, now)
		if err != nil {
			return err
		}
		if err := fn(ctx, repos, &l); err != nil {
			return err
		}
		snap = app.NewSnapshot(l.cfg, l.state, l.now)
		return nil
	})
	if err != nil {
		return app.Snapshot{}, err
	}
	return snap, nil
}

func (s *counterService) Snapshot(ctx context.Context) (app.Snapshot, error) {
	return s.run(ctx, "snapshot", map[string]any{}, func(ctx context.Context, repos txRepos, l *loaded) error {
		_, err := repos.reconcile(ctx, l)
		return err
	})
}

func (s *counterService) Reconcile(ctx context.Context) (app.ReconcileResult, error) {
	var rolled bool
	fields := map[string]any{}
	snap, err := s.run(ctx, "reconcile", fields, func(ctx context.Context, repos txRepos, l *loaded) error {
		var err error
		rolled, err = repos.reconcile(ctx, l)
		fields["rolled_over"] = rolled
		return err
	})
	if err != nil {
		return app.ReconcileResult{}, err
	}
	return app.ReconcileResult{Snapshot: snap, RolledOver: rolled}, nil
}

func (s *counterService) Increment(ctx context.Context) (app.IncrementResult, error) {
	var atQuota bool
	fields := map[string]any{}
	snap, err := s.run(ctx, "increment", fields, func(ctx context.Context, repos txRepos, l *loaded) error {
		if _, err := repos.reconcile(ctx, l); err != nil {
			return err
		}
		next, ok := rollover.Increment(l.state, l.cfg)
		if !ok {
			atQuota = true
			fields["at_quota"] = true
			return nil
		}
		l.state = next
		return repos.save(ctx, l)
	})
	if err != nil {
		return app.IncrementResult{}, err
	}
	return app.IncrementResult{Snapshot: snap, AtQuota: atQuota}, nil
}

func (s *counterService) Decrement(ctx context.Context) (app.Snapshot, error) {
	fields := map[string]any{}
	return s.run(ctx, "decrement", fields, func(ctx context.Context, repos txRepos, l *loaded) error {
		if _, err := repos.reconcile(ctx, l); err != nil {
			return err
		}
		next, ok := rollover.Decrement(l.state)
		if !ok {
			fields["noop"] = true
			return nil
		}
		l.state = next
		return repos.save(ctx, l)
	})
}

// ForceCloseDay banks today's leftover on the state as stored, without
// walking missed days first.
func (s *counterService) ForceCloseDay(ctx context.Context) (app.Snapshot, error) {
	return s.run(ctx, "close-day", map[string]any{}, func(ctx context.Context, repos txRepos, l *loaded) error {
		l.state = rollover.CloseDay(l.state, l.cfg, l.now)
		if err := repos.save(ctx, l); err != nil {
			return err
		}
		_, err := repos.reconcile(ctx, l)
		return err
	})
}

// ForceResetWeek walks any missed days first, so nothing they bank survives
// the reset.
func (s *counterService) ForceResetWeek(ctx context.Context) (app.Snapshot, error) {
	return s.run(ctx, "reset-week", map[string]any{}, func(ctx context.Context, repos txRepos, l *loaded) error {
		if _, err := repos.reconcile(ctx, l); err != nil {
			return err
		}
		l.state = rollover.ResetWeek(l.state, l.now)
		return repos.save(ctx, l)
	})
}

// Clear erases every stored record and starts again from the defaults.
func (s *counterService) Clear(ctx context.Context) (app.Snapshot, error) {
	fields := map[string]any{}
	return s.run(ctx, "clear", fields, func(ctx context.Context, repos txRepos, l *loaded) error {
		keys, err := repos.KV.Keys(ctx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := repos.KV.Delete(ctx, k); err != nil {
				return err
			}
		}
		fields["deleted"] = len(keys)

		l.cfg = domain.DefaultConfig()
		l.state = domain.NewState(l.now)
		return repos.save(ctx, l)
	})
}

// SetDailyQuota stores the clamped quota. Counters are left alone; a pending
// rollover is then applied under the new quota.
func (s *counterService) SetDailyQuota(ctx context.Context, v int) (app.Snapshot, error) {
	fields := map[string]any{"requested": v}
	return s.run(ctx, "set-quota", fields, func(ctx context.Context, repos txRepos, l *loaded) error {
		l.cfg = domain.Config{DailyQuota: domain.ClampQuota(v)}
		fields["quota"] = l.cfg.DailyQuota
		if err := repos.Config.Save(ctx, l.cfg); err != nil {
			return err
		}
		_, err := repos.reconcile(ctx, l)
		return err
	})
}

func (s *counterService) Config(ctx context.Context) (domain.Config, error) {
	var cfg domain.Config
	err := s.uow.WithinTx(ctx, func(ctx context.Context, st repository.Stores) error {
		var err error
		cfg, err = st.Config.Load(ctx)
		return err
	})
	return cfg, err
}
