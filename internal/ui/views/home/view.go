package home

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chestdef/internal/ui/theme"
)

// Screen is one of the static screens this view renders.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenMenu
	ScreenFinal
)

// Item is a menu entry.
type Item int

const (
	ItemWorkout Item = iota
	ItemFood
	itemCount
)

// ─── messages ────────────────────────────────────────────────────────────────

// StartMsg is emitted from the home screen's call to action.
type StartMsg struct{}

// SelectMsg is emitted when a menu entry is chosen.
type SelectMsg struct{ Item Item }

// BackHomeMsg is emitted from the final screen.
type BackHomeMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	screen Screen
	cursor Item
	t      func(string) string
	width  int
	height int
}

func New() Model {
	return Model{t: func(k string) string { return k }}
}

func (m *Model) SetScreen(s Screen) { m.screen = s }

func (m *Model) SetTranslator(t func(string) string) {
	if t != nil {
		m.t = t
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.screen == ScreenMenu && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.screen == ScreenMenu && m.cursor < itemCount-1 {
				m.cursor++
			}
		case "enter", " ":
			cmd := m.activate()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenHome:
		body = strings.Join([]string{
			theme.Title.Render(m.t("guideTitle")),
			theme.Hot.Render(m.t("guideSubtitle")),
			"",
			m.t("homeDesc"),
			"",
			theme.Button.Render(m.t("startBtn")),
		}, "\n")
	case ScreenMenu:
		lines := []string{theme.Title.Render(m.t("menuTitle")), ""}
		entries := []struct{ title, sub string }{
			{m.t("mainWorkoutTitle"), m.t("mainWorkoutSub")},
			{m.t("foodGuideTitle"), m.t("foodGuideSub")},
		}
		for i, e := range entries {
			style := theme.Pane
			if Item(i) == m.cursor {
				style = theme.PaneActive
			}
			lines = append(lines, style.Width(44).Render(theme.Hot.Render(e.title)+"\n"+theme.Muted.Render(e.sub)))
		}
		body = strings.Join(lines, "\n")
	case ScreenFinal:
		body = strings.Join([]string{
			theme.Title.Render(m.t("congratsTitle")),
			"",
			m.t("congratsDesc"),
			"",
			theme.Button.Render(m.t("backHome")),
		}, "\n")
	}
	return lipgloss.Place(max(m.width, 1), max(m.height, 1), lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(min(max(m.width-4, 20), 60)).Align(lipgloss.Center).Render(body))
}

func (m Model) activate() tea.Cmd {
	switch m.screen {
	case ScreenHome:
		return func() tea.Msg { return StartMsg{} }
	case ScreenMenu:
		item := m.cursor
		return func() tea.Msg { return SelectMsg{Item: item} }
	case ScreenFinal:
		return func() tea.Msg { return BackHomeMsg{} }
	}
	return nil
}
