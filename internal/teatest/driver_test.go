package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// counterModel counts key presses and pings, and schedules a slow tick.
type counterModel struct {
	keys  string
	pings int
	width int
}

func (m counterModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return pingMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg { return pingMsg{} }),
	)
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pingMsg:
		m.pings++
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.keys += msg.String()
	}
	return m, nil
}

func (m counterModel) View() string { return m.keys }

func TestDriver_DrainsFastAndSkipsTimers(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()

	m := d.Model.(counterModel)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 1, m.pings)
	assert.Equal(t, 1, d.Skipped)
}

func TestDriver_TypeAndQuit(t *testing.T) {
	d := New(t, counterModel{})

	d.Type("ab")
	d.PressEnter()
	assert.Equal(t, "abenter", d.View())

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('z')
	assert.Equal(t, "abenter", d.View(), "input after quit is ignored")
}

func TestDriver_WithCmdTimeout(t *testing.T) {
	d := New(t, counterModel{}, WithCmdTimeout(time.Millisecond))
	d.Send(pingMsg{})
	assert.Equal(t, 1, d.Model.(counterModel).pings)
}
