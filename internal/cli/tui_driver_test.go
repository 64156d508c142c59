package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/quotabank/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
)

// TestDriver wraps teatest.Driver with dashboard-specific inspection.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the dashboard model, sets a terminal size and drains
// Init (which loads the first snapshot synchronously from in-memory SQLite).
// The 1s tick Cmd never completes within the driver timeout, so tests
// deliver ticks explicitly with Tick.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newDashboardModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) model() dashboardModel {
	return d.Model.(dashboardModel)
}

// Tick delivers a tick for the current generation.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(tickMsg{gen: d.model().tickGen})
}

// TickGen returns the model's current tick generation.
func (d *TestDriver) TickGen() int {
	return d.model().tickGen
}

// Snapshot returns the last snapshot the model received.
func (d *TestDriver) Snapshot() dashboardModel {
	return d.model()
}

// Warning returns the transient warning text.
func (d *TestDriver) Warning() string {
	return d.model().warning
}

// EditingQuota reports whether the quota form is open.
func (d *TestDriver) EditingQuota() bool {
	return d.model().quotaForm != nil
}

// IsQuitting returns whether the dashboard has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.model().quitting || d.Quitting
}

// PressBackspace sends the Backspace key.
func (d *TestDriver) PressBackspace() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyBackspace})
}
