package app

import (
	"time"

	"github.com/alexanderramin/quotabank/internal/domain"
	"github.com/alexanderramin/quotabank/internal/rollover"
)

// Snapshot is the normalized view handed to the presentation layer after
// every use case. State is always reconciled to Now.
type Snapshot struct {
	Config        domain.Config
	State         domain.State
	Remaining     int
	Progress      float64
	Now           time.Time
	UntilMidnight time.Duration
	UntilMonday   time.Duration
}

// NewSnapshot derives the display fields from cfg and state at now.
func NewSnapshot(cfg domain.Config, state domain.State, now time.Time) Snapshot {
	cd := rollover.CountdownsAt(now)
	return Snapshot{
		Config:        cfg,
		State:         state,
		Remaining:     state.Remaining(cfg),
		Progress:      state.Progress(cfg),
		Now:           now,
		UntilMidnight: cd.UntilMidnight,
		UntilMonday:   cd.UntilMonday,
	}
}

// Countdowns returns the snapshot's countdowns in formatter-friendly form.
func (s Snapshot) Countdowns() rollover.Countdowns {
	return rollover.Countdowns{UntilMidnight: s.UntilMidnight, UntilMonday: s.UntilMonday}
}

// AtQuota reports whether today's quota is used up.
func (s Snapshot) AtQuota() bool {
	return s.State.AtQuota(s.Config)
}

// ReconcileResult is returned by the explicit reconcile use case.
type ReconcileResult struct {
	Snapshot Snapshot
	// RolledOver is true when at least one day boundary was crossed.
	RolledOver bool
}

// IncrementResult is returned by the increment use case. AtQuota marks an
// increment that was refused because the quota was already reached; it is a
// warning for the UI, not an error.
type IncrementResult struct {
	Snapshot Snapshot
	AtQuota  bool
}
