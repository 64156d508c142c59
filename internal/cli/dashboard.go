package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quotabank/internal/app"
	"github.com/alexanderramin/quotabank/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const warningTTL = 1500 * time.Millisecond

// tickMsg drives the countdowns. Only the tick whose gen matches the
// model's current generation re-arms; older ones are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

// warningExpiredMsg clears the transient warning if seq is still current.
type warningExpiredMsg struct{ seq int }

// snapshotMsg carries the result of any counter use case.
type snapshotMsg struct {
	snap    app.Snapshot
	atQuota bool
	note    string
	err     error
}

type dashboardModel struct {
	ctx      context.Context
	app      *App
	keys     dashboardKeyMap
	help     help.Model
	interval time.Duration

	snap   app.Snapshot
	loaded bool
	err    error

	tickGen int

	note    string
	warning string
	warnSeq int

	// quotaForm is non-nil while the quota editor is open.
	quotaForm  *huh.Form
	quotaInput *string

	width    int
	quitting bool
}

func newDashboardModel(ctx context.Context, a *App) dashboardModel {
	h := help.New()
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.FullKey = formatter.StyleFg
	h.Styles.FullDesc = formatter.StyleDim

	return dashboardModel{
		ctx:      ctx,
		app:      a,
		keys:     newDashboardKeyMap(),
		help:     h,
		interval: a.Settings.TickInterval(),
	}
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m dashboardModel) scheduleTick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// restartTick invalidates any pending tick and arms a fresh one.
func (m *dashboardModel) restartTick() tea.Cmd {
	m.tickGen++
	return m.scheduleTick()
}

func (m dashboardModel) snapshotCmd() tea.Cmd {
	svc, ctx := m.app.Counter, m.ctx
	return func() tea.Msg {
		snap, err := svc.Snapshot(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m dashboardModel) reconcileCmd() tea.Cmd {
	svc, ctx := m.app.Counter, m.ctx
	return func() tea.Msg {
		res, err := svc.Reconcile(ctx)
		msg := snapshotMsg{snap: res.Snapshot, err: err}
		if res.RolledOver {
			msg.note = "New day started."
		}
		return msg
	}
}

func (m dashboardModel) incrementCmd() tea.Cmd {
	svc, ctx := m.app.Counter, m.ctx
	return func() tea.Msg {
		res, err := svc.Increment(ctx)
		return snapshotMsg{snap: res.Snapshot, atQuota: res.AtQuota, err: err}
	}
}

func (m dashboardModel) useCaseCmd(fn func(context.Context) (app.Snapshot, error), note string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		snap, err := fn(ctx)
		return snapshotMsg{snap: snap, note: note, err: err}
	}
}

func (m dashboardModel) setQuotaCmd(raw string) tea.Cmd {
	svc, ctx := m.app.Counter, m.ctx
	return func() tea.Msg {
		v, err := parseQuota(raw)
		if err != nil {
			return snapshotMsg{err: err}
		}
		snap, err := svc.SetDailyQuota(ctx, v)
		return snapshotMsg{snap: snap, note: fmt.Sprintf("Daily quota set to %d.", snap.Config.DailyQuota), err: err}
	}
}

func (m *dashboardModel) showWarning(text string) tea.Cmd {
	m.warning = text
	m.warnSeq++
	seq := m.warnSeq
	return tea.Tick(warningTTL, func(time.Time) tea.Msg {
		return warningExpiredMsg{seq: seq}
	})
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.snapshotCmd(), m.scheduleTick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		return m, tea.Batch(m.snapshotCmd(), m.scheduleTick())

	case tea.FocusMsg:
		// Timers may have been suspended while unfocused.
		return m, tea.Batch(m.reconcileCmd(), m.restartTick())

	case warningExpiredMsg:
		if msg.seq == m.warnSeq {
			m.warning = ""
		}
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.snap = msg.snap
		m.loaded = true
		if msg.note != "" {
			m.note = msg.note
		}
		if msg.atQuota {
			return m, m.showWarning(fmt.Sprintf("Daily quota of %d reached.", msg.snap.Config.DailyQuota))
		}
		return m, nil
	}

	if m.quotaForm != nil {
		return m.updateQuotaForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.note = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		return m, m.incrementCmd()
	case key.Matches(msg, m.keys.Remove):
		return m, m.useCaseCmd(m.app.Counter.Decrement, "")
	case key.Matches(msg, m.keys.CloseDay):
		return m, m.useCaseCmd(m.app.Counter.ForceCloseDay, "Day closed, leftover banked.")
	case key.Matches(msg, m.keys.ResetWeek):
		return m, m.useCaseCmd(m.app.Counter.ForceResetWeek, "Week bank emptied.")
	case key.Matches(msg, m.keys.EditQuota):
		return m.openQuotaForm()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) openQuotaForm() (tea.Model, tea.Cmd) {
	current := fmt.Sprintf("%d", m.snap.Config.DailyQuota)
	m.quotaInput = &current
	m.quotaForm = newQuotaForm(m.quotaInput)
	return m, m.quotaForm.Init()
}

func (m dashboardModel) updateQuotaForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.quotaForm, m.quotaInput = nil, nil
		m.note = "Quota unchanged."
		return m, nil
	}

	form, cmd := m.quotaForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.quotaForm = f
	}

	switch m.quotaForm.State {
	case huh.StateCompleted:
		raw := *m.quotaInput
		m.quotaForm, m.quotaInput = nil, nil
		return m, tea.Batch(cmd, m.setQuotaCmd(raw))
	case huh.StateAborted:
		m.quotaForm, m.quotaInput = nil, nil
		return m, nil
	}
	return m, cmd
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StylePurple.Render("quotabank"))
	if m.loaded {
		b.WriteString("  " + formatter.RenderCompactBar(m.snap.Progress, 12, m.quotaForm != nil))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n")
	case !m.loaded:
		b.WriteString(formatter.Dim("Loading...") + "\n\n")
	}

	if m.loaded {
		b.WriteString(formatter.FormatStatus(m.snap))
		b.WriteString("\n")
	}

	if m.quotaForm != nil {
		b.WriteString("\n" + m.quotaForm.View() + "\n")
		b.WriteString(formatter.Dim("enter: save  esc: cancel") + "\n")
		return b.String()
	}

	if m.warning != "" {
		b.WriteString(formatter.Warning(m.warning) + "\n")
	} else if m.note != "" {
		b.WriteString(formatter.Dim(m.note) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
