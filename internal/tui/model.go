package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/fitlife/internal/tracking"
	"github.com/garrettladley/fitlife/internal/tui/components/footer"
	"github.com/garrettladley/fitlife/internal/tui/theme"
	"github.com/garrettladley/fitlife/internal/workout"
	"github.com/garrettladley/fitlife/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

var hints = []string{"s start/pause", "r reset", "c complete", "q quit"}

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	text           string
	lastSaved      *tracking.CompletionRecord
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger != nil {
		deps.Ctx = xslog.WithLogger(deps.Ctx, deps.Logger)
	}
	return Model{
		theme: theme.New(deps.DarkMode),
		text:  workout.Format(deps.Timer.Elapsed()),
		deps:  deps,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.deps.Display == nil {
		return nil
	}
	return listenDisplayCmd(m.deps.Ctx, m.deps.Display)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())

	case TimerTextMsg:
		m.text = msg.Text
		return m, listenDisplayCmd(m.deps.Ctx, m.deps.Display)

	case CompletionSavedMsg:
		m.lastSaved = &msg.Record
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	timer := m.deps.Timer
	switch key {
	case "s", "space":
		if timer.Running() {
			timer.Pause()
		} else {
			timer.Start()
		}
	case "p":
		timer.Pause()
	case "r":
		timer.Reset()
		m.text = workout.Format(0)
	case "c":
		elapsed := timer.Elapsed()
		if elapsed <= 0 || m.deps.Tracker == nil {
			return nil
		}
		timer.Reset()
		m.text = workout.Format(0)
		return trackCompletionCmd(m.deps.Ctx, m.deps.Tracker, m.deps.ExerciseID, elapsed)
	case "q", "ctrl+c":
		timer.Reset()
		return tea.Quit
	}
	return nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	body := lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-2, 0),
		lipgloss.Center,
		lipgloss.Center,
		m.render(),
	)
	foot := footer.New(hints, m.deps.Version, m.viewportWidth).Render()

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left, body, foot))
	return view
}

// render draws the clock block without placement.
func (m *Model) render() string {
	state := m.deps.Timer.State()

	clock := m.theme.Base().Bold(true)
	if state == workout.StateRunning {
		clock = clock.Foreground(m.theme.Running())
	}

	lines := []string{
		clock.Render(m.text),
		m.theme.Muted().Render(state.String()),
	}
	if m.deps.ExerciseID != "" {
		lines = append(lines, m.theme.Muted().Render(m.deps.ExerciseID))
	}
	if m.lastSaved != nil {
		lines = append(lines, m.theme.Muted().Render(
			"saved "+workout.Format(m.lastSaved.Duration())+" "+m.lastSaved.ExerciseID))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
