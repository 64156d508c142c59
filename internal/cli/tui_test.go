package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/quotabank/internal/app"
	"github.com/alexanderramin/quotabank/internal/calendar"
	"github.com/alexanderramin/quotabank/internal/domain"
	"github.com/alexanderramin/quotabank/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_LoadsSnapshotOnStartup(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	m := d.Snapshot()
	assert.True(t, m.loaded)
	view := d.View()
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "2024-W24")
	assert.Contains(t, view, "quotabank")
}

func TestTUI_AddAndRemove(t *testing.T) {
	a, _, database := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('+')
	d.PressKey('=')
	d.PressKey('+')
	assert.Equal(t, 3, d.Snapshot().snap.State.TodayCount)

	d.PressKey('-')
	assert.Equal(t, 2, d.Snapshot().snap.State.TodayCount)
	assert.Equal(t, 2, testutil.StoredState(t, database).TodayCount)
}

func TestTUI_IncrementAtQuotaShowsTransientWarning(t *testing.T) {
	a, _, _ := testApp(t)
	_, err := a.Counter.SetDailyQuota(context.Background(), 1)
	require.NoError(t, err)
	d := NewTestDriver(t, a)

	d.PressKey('+')
	assert.Empty(t, d.Warning())

	d.PressKey('+')
	assert.Equal(t, "Daily quota of 1 reached.", d.Warning())
	assert.Contains(t, d.View(), "Daily quota of 1 reached.")
	assert.Equal(t, 1, d.Snapshot().snap.State.TodayCount)

	// A stale expiry from an earlier warning leaves the current one alone.
	seq := d.Snapshot().warnSeq
	d.Send(warningExpiredMsg{seq: seq - 1})
	assert.NotEmpty(t, d.Warning())

	d.Send(warningExpiredMsg{seq: seq})
	assert.Empty(t, d.Warning())
}

func TestTUI_TickCatchesDayBoundary(t *testing.T) {
	a, clk, _ := testApp(t)
	d := NewTestDriver(t, a)
	d.PressKey('+')

	clk.AdvanceDays(1)
	d.Tick()

	m := d.Snapshot()
	assert.Equal(t, calendar.DateKey("2024-06-13"), m.snap.State.LastDate)
	assert.Zero(t, m.snap.State.TodayCount)
	assert.Equal(t, 8, m.snap.State.WeekBank)
}

func TestTUI_StaleTickIgnored(t *testing.T) {
	a, clk, _ := testApp(t)
	d := NewTestDriver(t, a)

	d.Send(tea.FocusMsg{})
	assert.Equal(t, 1, d.TickGen())

	clk.AdvanceDays(1)
	d.Send(tickMsg{gen: 0})
	assert.Equal(t, calendar.DateKey("2024-06-12"), d.Snapshot().snap.State.LastDate,
		"a tick from the previous generation must not refresh")

	d.Tick()
	assert.Equal(t, calendar.DateKey("2024-06-13"), d.Snapshot().snap.State.LastDate)
}

func TestTUI_FocusReconciles(t *testing.T) {
	a, clk, _ := testApp(t)
	d := NewTestDriver(t, a)

	clk.AdvanceDays(1)
	d.Send(tea.FocusMsg{})

	m := d.Snapshot()
	assert.Equal(t, calendar.DateKey("2024-06-13"), m.snap.State.LastDate)
	assert.Equal(t, 9, m.snap.State.WeekBank)
	assert.Contains(t, d.View(), "New day started.")
}

func TestTUI_CloseDayAndResetWeek(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)
	d.PressKey('+')
	d.PressKey('+')

	d.PressKey('c')
	m := d.Snapshot()
	assert.Equal(t, 7, m.snap.State.WeekBank)
	assert.Zero(t, m.snap.State.TodayCount)
	assert.Contains(t, d.View(), "Day closed, leftover banked.")

	d.PressKey('w')
	assert.Zero(t, d.Snapshot().snap.State.WeekBank)
}

func TestTUI_EditQuota(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('e')
	require.True(t, d.EditingQuota())

	// Keys go to the form while it is open.
	d.PressBackspace()
	d.Type("12")
	assert.Zero(t, d.Snapshot().snap.State.TodayCount)
	d.PressEnter()

	assert.False(t, d.EditingQuota())
	assert.Equal(t, 12, d.Snapshot().snap.Config.DailyQuota)

	cfg, err := a.Counter.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.DailyQuota)
}

func TestTUI_EditQuotaCancel(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('e')
	d.Type("5")
	d.PressEsc()

	assert.False(t, d.EditingQuota())
	assert.Equal(t, domain.DefaultDailyQuota, d.Snapshot().snap.Config.DailyQuota)
	assert.Contains(t, d.View(), "Quota unchanged.")
}

func TestTUI_ToggleHelp(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	assert.NotContains(t, d.View(), "reset week")
	d.PressKey('?')
	assert.Contains(t, d.View(), "reset week")
}

func TestTUI_QuitWithQ(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_ErrorShown(t *testing.T) {
	a, _, _ := testApp(t)
	d := NewTestDriver(t, a)

	d.Send(snapshotMsg{err: errors.New("database is locked")})
	assert.Contains(t, d.View(), "Error: database is locked")

	d.Send(snapshotMsg{snap: app.Snapshot{Config: domain.DefaultConfig()}})
	assert.NotContains(t, d.View(), "Error:")
}
