package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "chestdef/internal/modules/catalog/dto"
	guidedto "chestdef/internal/modules/guide/dto"
	mediain "chestdef/internal/modules/media/port/in"
	nutritiondto "chestdef/internal/modules/nutrition/dto"
	sessiondto "chestdef/internal/modules/session/dto"
	sessionin "chestdef/internal/modules/session/port/in"
	"chestdef/internal/ui/components"
	"chestdef/internal/ui/theme"
	calculatorview "chestdef/internal/ui/views/calculator"
	guideview "chestdef/internal/ui/views/guide"
	homeview "chestdef/internal/ui/views/home"
	workoutview "chestdef/internal/ui/views/workout"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	Workouts(ctx context.Context, locale string) ([]catalogdto.WorkoutOutput, error)
	Exercise(ctx context.Context, id, locale string) (catalogdto.ExerciseOutput, error)
	T(key, locale string) string
	Locales() []string
}

type sessionPort interface {
	Open(ctx context.Context, input sessiondto.OpenInput) (sessionin.Session, error)
}

type mediaPort interface {
	NewPlayback() mediain.Playback
}

type guidePort interface {
	Legal(ctx context.Context, locale string, width int) (guidedto.Page, error)
	Food(ctx context.Context, locale string, width int) (guidedto.Page, error)
	Exercise(ctx context.Context, exerciseID, locale string, width int) (guidedto.Page, error)
}

type nutritionPort interface {
	Calculate(input nutritiondto.CalculateInput) (nutritiondto.CalculateOutput, error)
	Levels() []nutritiondto.LevelOutput
}

type userDataPort interface {
	IsFavorite(ctx context.Context, exerciseID string) bool
	ToggleFavorite(ctx context.Context, exerciseID string) (bool, error)
	Note(ctx context.Context, exerciseID string) string
	SetNote(ctx context.Context, exerciseID, text string) error
}

// Ports bundles the use-cases the UI drives.
type Ports struct {
	Catalog   catalogPort
	Session   sessionPort
	Media     mediaPort
	Guide     guidePort
	Nutrition nutritionPort
	UserData  userDataPort
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenHome screenID = iota
	screenLegal
	screenMenu
	screenWorkout
	screenExerciseGuide
	screenFood
	screenCalculator
	screenFinal
)

// ─── messages ────────────────────────────────────────────────────────────────

// RunMsg carries a scheduler callback onto the Update loop. Every timer tick
// and gesture hold arrives this way, so state is only touched here.
type RunMsg struct{ Fn func() }

type workoutOpenedMsg struct {
	session sessionin.Session
	title   string
	err     error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Help     key.Binding
	Palette  key.Binding
	Language key.Binding
	Back     key.Binding
	Quit     key.Binding
	Enter    key.Binding
	Tap      key.Binding
	Reset    key.Binding
	Calc     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/expand")),
		Tap:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "tap timer (twice: switch phase)")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r / hold click", "reset timer")),
		Calc:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calculator / finish")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Palette, k.Language, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Back, k.Calc},
		{k.Tap, k.Reset},
		{k.Help, k.Palette, k.Language, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns screen routing, the locale, the
// legal gate, the help overlay and the command palette. Business logic is
// delegated to ports and rendering to sub-views.
type Model struct {
	ports Ports

	homeView  homeview.Model
	guideView guideview.Model
	workView  workoutview.Model
	calcView  calculatorview.Model

	screen        screenID
	locale        string
	legalAccepted bool
	workoutID     string
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	status        string
	width         int
	height        int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ports Ports, locale string) Model {
	m := Model{
		ports:     ports,
		homeView:  homeview.New(),
		guideView: guideview.New(ports.Guide),
		workView:  workoutview.New(ports.Catalog, ports.UserData),
		calcView:  calculatorview.New(ports.Nutrition),
		screen:    screenHome,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
	m.setLocale(locale)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Scheduler callbacks run even while an overlay is open.
	if run, ok := msg.(RunMsg); ok {
		if run.Fn != nil {
			run.Fn()
		}
		return m, nil
	}

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		cmds = append(cmds, m.propagateSize())
		return m, tea.Batch(cmds...)

	case tea.FocusMsg:
		m.workView.Resume()
		return m, nil

	case tea.BlurMsg:
		m.workView.Suspend()
		return m, nil

	case homeview.StartMsg:
		cmd := m.goLegal()
		return m, cmd

	case homeview.SelectMsg:
		switch msg.Item {
		case homeview.ItemWorkout:
			cmd := m.openWorkoutCmd(m.workoutID)
			return m, cmd
		case homeview.ItemFood:
			cmd := m.goFood()
			return m, cmd
		}

	case homeview.BackHomeMsg:
		m.setScreen(screenHome)
		return m, nil

	case workoutOpenedMsg:
		if msg.err != nil {
			m.status = "workout: " + msg.err.Error()
			return m, nil
		}
		var playback mediain.Playback
		if m.ports.Media != nil {
			playback = m.ports.Media.NewPlayback()
		}
		m.workView.Attach(msg.session, playback)
		m.status = msg.title
		m.setScreen(screenWorkout)
		return m, nil

	case workoutview.CompletedMsg:
		if msg.Err != nil {
			m.status = "complete: " + msg.Err.Error()
		} else {
			m.status = "ready"
		}
		m.setScreen(screenFinal)
		return m, nil

	case workoutview.OpenGuideMsg:
		m.setScreen(screenExerciseGuide)
		m.guideView.SetFooter(theme.Muted.Render("esc: " + m.t("backLabel")))
		cmd := m.guideView.Open(guideview.KindExercise, msg.ExerciseID, m.locale)
		return m, cmd

	case workoutview.StatusMsg:
		m.status = msg.Text
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view while it is taking text input.
		if m.subViewEditing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.workView.Detach()
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case "l":
			cmd := m.cycleLocale()
			return m, cmd
		case "esc":
			cmd := m.back()
			return m, cmd
		case "enter":
			if m.screen == screenLegal {
				m.legalAccepted = true
				m.setScreen(screenMenu)
				return m, nil
			}
		case "c":
			if m.screen == screenFood {
				m.setScreen(screenCalculator)
				return m, nil
			}
		}
	}

	// Propagate the message to the active screen's sub-view.
	var viewCmd tea.Cmd
	switch m.screen {
	case screenHome, screenMenu, screenFinal:
		m.homeView, viewCmd = m.homeView.Update(msg)
	case screenLegal, screenFood, screenExerciseGuide:
		m.guideView, viewCmd = m.guideView.Update(msg)
	case screenWorkout:
		m.workView, viewCmd = m.workView.Update(msg)
	case screenCalculator:
		m.calcView, viewCmd = m.calcView.Update(msg)
	}
	cmds = append(cmds, viewCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	switch m.screen {
	case screenHome, screenMenu, screenFinal:
		return m.homeView.View()
	case screenLegal, screenFood, screenExerciseGuide:
		return m.guideView.View()
	case screenWorkout:
		return m.workView.View()
	case screenCalculator:
		return m.calcView.View()
	}
	return ""
}

func (m Model) renderHeader() string {
	lang := theme.Muted.Render(m.t("languageLabel") + ": " + strings.ToUpper(m.locale))
	brand := theme.Hot.Render("CHEST DEF")
	gap := max(m.width-lipgloss.Width(brand)-lipgloss.Width(lang), 1)
	bar := brand + strings.Repeat(" ", gap) + lang
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  :::palette  l:lang  esc:back  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	arg := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "home":
		m.setScreen(screenHome)
	case "menu":
		if !m.legalAccepted {
			cmd := m.goLegal()
			return m, cmd
		}
		m.setScreen(screenMenu)
	case "workout:open":
		if !m.legalAccepted {
			m.status = "accept the notice first"
			cmd := m.goLegal()
			return m, cmd
		}
		id := m.workoutID
		if arg != "" {
			id = arg
		}
		cmd := m.openWorkoutCmd(id)
		return m, cmd
	case "food":
		if !m.legalAccepted {
			cmd := m.goLegal()
			return m, cmd
		}
		cmd := m.goFood()
		return m, cmd
	case "calc":
		m.setScreen(screenCalculator)
	case "lang":
		if arg == "" {
			m.status = "usage: lang <pt|en>"
			return m, nil
		}
		if !m.supportsLocale(arg) {
			m.status = "unsupported language: " + arg
			return m, nil
		}
		cmd := m.switchLocale(arg)
		return m, cmd
	default:
		if cmd, ok := m.workView.Command(parts[0], arg); ok {
			return m, cmd
		}
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) t(key string) string {
	if m.ports.Catalog == nil {
		return key
	}
	return m.ports.Catalog.T(key, m.locale)
}

func (m *Model) setScreen(s screenID) {
	m.screen = s
	switch s {
	case screenHome:
		m.homeView.SetScreen(homeview.ScreenHome)
	case screenMenu:
		m.homeView.SetScreen(homeview.ScreenMenu)
	case screenFinal:
		m.homeView.SetScreen(homeview.ScreenFinal)
	}
}

func (m *Model) setLocale(locale string) {
	if locale == "" || !m.supportsLocale(locale) {
		locale = "pt"
		if m.ports.Catalog != nil {
			if all := m.ports.Catalog.Locales(); len(all) > 0 {
				locale = all[0]
			}
		}
	}
	m.locale = locale
	var tr func(string) string
	if catalog := m.ports.Catalog; catalog != nil {
		tr = func(k string) string { return catalog.T(k, locale) }
	}
	m.homeView.SetTranslator(tr)
	m.calcView.SetTranslator(tr)
	m.workView.SetLocale(locale)
	if m.workoutID == "" && m.ports.Catalog != nil {
		if workouts, err := m.ports.Catalog.Workouts(context.Background(), locale); err == nil && len(workouts) > 0 {
			m.workoutID = workouts[0].ID
		}
	}
}

func (m Model) supportsLocale(locale string) bool {
	if m.ports.Catalog == nil {
		return locale == "pt"
	}
	for _, l := range m.ports.Catalog.Locales() {
		if l == locale {
			return true
		}
	}
	return false
}

// cycleLocale switches to the next supported locale.
func (m *Model) cycleLocale() tea.Cmd {
	if m.ports.Catalog == nil {
		return nil
	}
	all := m.ports.Catalog.Locales()
	next := all[0]
	for i, l := range all {
		if l == m.locale {
			next = all[(i+1)%len(all)]
		}
	}
	return m.switchLocale(next)
}

func (m *Model) switchLocale(locale string) tea.Cmd {
	m.setLocale(locale)
	switch m.screen {
	case screenLegal:
		return m.guideView.Open(guideview.KindLegal, "", m.locale)
	case screenFood:
		return m.guideView.Open(guideview.KindFood, "", m.locale)
	}
	return nil
}

func (m *Model) goLegal() tea.Cmd {
	m.setScreen(screenLegal)
	m.guideView.SetFooter(theme.Button.Render("enter: " + m.t("proceedBtn")))
	return m.guideView.Open(guideview.KindLegal, "", m.locale)
}

func (m *Model) goFood() tea.Cmd {
	m.setScreen(screenFood)
	m.guideView.SetFooter(theme.Button.Render("c: " + m.t("calcBtn")))
	return m.guideView.Open(guideview.KindFood, "", m.locale)
}

func (m *Model) back() tea.Cmd {
	switch m.screen {
	case screenLegal, screenFinal:
		m.setScreen(screenHome)
	case screenMenu:
		m.setScreen(screenHome)
	case screenWorkout:
		m.workView.Detach()
		m.setScreen(screenMenu)
	case screenExerciseGuide:
		if m.workView.Active() {
			m.setScreen(screenWorkout)
		} else {
			m.setScreen(screenMenu)
		}
	case screenFood:
		m.setScreen(screenMenu)
	case screenCalculator:
		return m.goFood()
	}
	return nil
}

// subViewEditing reports whether the active screen owns the keyboard for text
// input, in which case global key bindings must yield.
func (m Model) subViewEditing() bool {
	switch m.screen {
	case screenWorkout:
		return m.workView.Editing()
	case screenCalculator:
		return m.calcView.Editing()
	}
	return false
}

func (m *Model) propagateSize() tea.Cmd {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	var cmd tea.Cmd
	m.homeView, _ = m.homeView.Update(sz)
	m.guideView, cmd = m.guideView.Update(sz)
	m.workView, _ = m.workView.Update(sz)
	m.calcView, _ = m.calcView.Update(sz)
	return cmd
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) openWorkoutCmd(workoutID string) tea.Cmd {
	input := sessiondto.OpenInput{WorkoutID: workoutID, Locale: m.locale, LegalAccepted: m.legalAccepted}
	port := m.ports.Session
	return func() tea.Msg {
		session, err := port.Open(context.Background(), input)
		if err != nil {
			return workoutOpenedMsg{err: err}
		}
		return workoutOpenedMsg{session: session, title: session.Snapshot().Title}
	}
}
