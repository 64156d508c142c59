package service

import (
	"context"

	"github.com/alexanderramin/quotabank/internal/app"
	"github.com/alexanderramin/quotabank/internal/domain"
)

// CounterService is the single entry point for every user event. Each call
// reads the full state, reconciles it to the clock, applies the event and
// writes the full state back inside one transaction.
type CounterService interface {
	Snapshot(ctx context.Context) (app.Snapshot, error)
	Reconcile(ctx context.Context) (app.ReconcileResult, error)
	Increment(ctx context.Context) (app.IncrementResult, error)
	Decrement(ctx context.Context) (app.Snapshot, error)
	ForceCloseDay(ctx context.Context) (app.Snapshot, error)
	ForceResetWeek(ctx context.Context) (app.Snapshot, error)
	Clear(ctx context.Context) (app.Snapshot, error)
	SetDailyQuota(ctx context.Context, v int) (app.Snapshot, error)
	Config(ctx context.Context) (domain.Config, error)
}

var (
	_ app.SnapshotUseCase  = CounterService(nil)
	_ app.ReconcileUseCase = CounterService(nil)
	_ app.CountUseCase     = CounterService(nil)
	_ app.ForceUseCase     = CounterService(nil)
	_ app.QuotaUseCase     = CounterService(nil)
	_ app.ClearUseCase     = CounterService(nil)
)
