package app

import "context"

type SnapshotUseCase interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

type ReconcileUseCase interface {
	Reconcile(ctx context.Context) (ReconcileResult, error)
}

type CountUseCase interface {
	Increment(ctx context.Context) (IncrementResult, error)
	Decrement(ctx context.Context) (Snapshot, error)
}

type ForceUseCase interface {
	ForceCloseDay(ctx context.Context) (Snapshot, error)
	ForceResetWeek(ctx context.Context) (Snapshot, error)
}

type QuotaUseCase interface {
	SetDailyQuota(ctx context.Context, v int) (Snapshot, error)
}

type ClearUseCase interface {
	Clear(ctx context.Context) (Snapshot, error)
}
