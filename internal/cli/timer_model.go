package cli

import (
	"strings"

	"github.com/alexanderramin/tomato/internal/cli/formatter"
	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// snapshotMsg signals that the timer published a state change.
type snapshotMsg timer.Snapshot

// eventsClosedMsg means the timer was closed and no more updates will come.
type eventsClosedMsg struct{}

type timerKeyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Work       key.Binding
	Break      key.Binding
	Sound      key.Binding
	ResetStats key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Work:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "work")),
		Break:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break")),
		Sound:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		ResetStats: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "reset stats")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Sound, k.Help, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Work, k.Break},
		{k.Sound, k.ResetStats},
		{k.Help, k.Quit},
	}
}

// timerModel is the interactive countdown screen.
type timerModel struct {
	timer  *timer.IntervalTimer
	events <-chan timer.Snapshot
	snap   timer.Snapshot

	keys timerKeyMap
	help help.Model

	confirmingReset bool
	notice          string
}

func newTimerModel(t *timer.IntervalTimer) *timerModel {
	return &timerModel{
		timer:  t,
		events: t.Subscribe(8),
		snap:   t.Snapshot(),
		keys:   defaultTimerKeys(),
		help:   help.New(),
	}
}

func waitForSnapshot(events <-chan timer.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m *timerModel) Init() tea.Cmd {
	return waitForSnapshot(m.events)
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		// The channel may hold older snapshots when the view falls behind.
		m.refresh()
		return m, waitForSnapshot(m.events)

	case eventsClosedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmingReset {
		switch msg.String() {
		case "y", "Y":
			m.timer.ResetStats()
			m.notice = "Statistics reset."
		default:
			m.notice = "Reset cancelled."
		}
		m.confirmingReset = false
		m.refresh()
		return m, nil
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.timer.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Work):
		_ = m.timer.SwitchMode(domain.ModeWork)
	case key.Matches(msg, m.keys.Break):
		_ = m.timer.SwitchMode(domain.ModeBreak)
	case key.Matches(msg, m.keys.Sound):
		m.timer.ToggleSound()
	case key.Matches(msg, m.keys.ResetStats):
		m.confirmingReset = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.refresh()
	return m, nil
}

// refresh reads the timer directly so the view never lags a key press.
func (m *timerModel) refresh() {
	m.snap = m.timer.Snapshot()
}

func (m *timerModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatTimer(m.snap))
	b.WriteString("\n")

	switch {
	case m.confirmingReset:
		b.WriteString(formatter.StyleYellow.Render("Reset all statistics? (y/n)"))
	case m.notice != "":
		b.WriteString(formatter.Dim(m.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
