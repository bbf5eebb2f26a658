package guide

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	guidedto "chestdef/internal/modules/guide/dto"
	"chestdef/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the guide use-case.
type Port interface {
	Legal(ctx context.Context, locale string, width int) (guidedto.Page, error)
	Food(ctx context.Context, locale string, width int) (guidedto.Page, error)
	Exercise(ctx context.Context, exerciseID, locale string, width int) (guidedto.Page, error)
}

// Kind selects which page the view shows.
type Kind int

const (
	KindLegal Kind = iota
	KindFood
	KindExercise
)

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg is sent when a page has been rendered (or failed to render).
type LoadedMsg struct {
	Kind Kind
	Page guidedto.Page
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows one rendered guide page in a scrollable viewport.
type Model struct {
	port     Port
	viewport viewport.Model
	spinner  spinner.Model
	page     guidedto.Page
	kind     Kind
	target   string
	locale   string
	footer   string
	loading  bool
	width    int
	height   int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Orange)
	return Model{port: port, viewport: viewport.New(0, 0), spinner: sp}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.page.Markdown != "" {
			// Wrap width changed; render again.
			cmds = append(cmds, m.loadCmd())
		}

	case LoadedMsg:
		if msg.Kind != m.kind {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.viewport.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.page = msg.Page
		m.viewport.SetContent(msg.Page.Rendered)
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center, m.spinner.View())
	}
	footer := theme.Muted.Render(fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100))
	if m.footer != "" {
		footer = m.footer + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

// Open loads a page. target is the exercise id for KindExercise.
func (m *Model) Open(kind Kind, target, locale string) tea.Cmd {
	m.kind = kind
	m.target = target
	m.locale = locale
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// SetFooter sets the line shown under the page, e.g. the next action.
func (m *Model) SetFooter(footer string) { m.footer = footer }

// Title returns the loaded page's title.
func (m Model) Title() string { return m.page.Title }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-1, 1)
}

func (m Model) loadCmd() tea.Cmd {
	kind, target, locale, width := m.kind, m.target, m.locale, m.width
	return func() tea.Msg {
		ctx := context.Background()
		var (
			page guidedto.Page
			err  error
		)
		switch kind {
		case KindLegal:
			page, err = m.port.Legal(ctx, locale, width)
		case KindFood:
			page, err = m.port.Food(ctx, locale, width)
		case KindExercise:
			page, err = m.port.Exercise(ctx, target, locale, width)
		}
		return LoadedMsg{Kind: kind, Page: page, Err: err}
	}
}
