package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "chestdef/internal/modules/catalog/dto"
	mediain "chestdef/internal/modules/media/port/in"
	sessiondto "chestdef/internal/modules/session/dto"
	sessionin "chestdef/internal/modules/session/port/in"
	timerdto "chestdef/internal/modules/timer/dto"
	"chestdef/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	Exercise(ctx context.Context, id, locale string) (catalogdto.ExerciseOutput, error)
	T(key, locale string) string
}

type UserDataPort interface {
	IsFavorite(ctx context.Context, exerciseID string) bool
	ToggleFavorite(ctx context.Context, exerciseID string) (bool, error)
	Note(ctx context.Context, exerciseID string) string
	SetNote(ctx context.Context, exerciseID, text string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

// CompletedMsg is emitted once the workout has been completed.
type CompletedMsg struct{ Err error }

// OpenGuideMsg asks the root model to show an exercise's guide page.
type OpenGuideMsg struct{ ExerciseID string }

// StatusMsg carries a one-line status for the root status bar.
type StatusMsg struct{ Text string }

// ─── model ───────────────────────────────────────────────────────────────────

// live holds what scheduler callbacks mutate, shared by every copy of Model.
type live struct {
	session  sessionin.Session
	playback mediain.Playback
}

// Model is the workout accordion with the expanded slot's timer and video.
type Model struct {
	catalog  CatalogPort
	userdata UserDataPort
	live     *live
	locale   string
	content  map[string]catalogdto.ExerciseOutput
	cursor   int
	note     textinput.Model
	editing  bool
	width    int
	height   int
}

func New(catalog CatalogPort, userdata UserDataPort) Model {
	ti := textinput.New()
	ti.CharLimit = 280
	return Model{catalog: catalog, userdata: userdata, live: &live{}, note: ti, content: map[string]catalogdto.ExerciseOutput{}}
}

// Attach binds an open session and a playback to the view. Any previous
// session is disposed.
func (m *Model) Attach(session sessionin.Session, playback mediain.Playback) {
	m.Detach()
	m.live.session = session
	m.live.playback = playback
	m.cursor = 0
	lv := m.live
	session.OnVideoFinished(func(pos int, finished bool) {
		if lv.playback != nil && lv.session != nil && lv.session.Snapshot().Expanded == pos {
			lv.playback.SetFinished(context.Background(), finished)
		}
	})
	m.refreshContent()
}

// Detach disposes the session and stops playback.
func (m *Model) Detach() {
	if m.live.playback != nil {
		m.live.playback.Stop(context.Background())
	}
	if m.live.session != nil {
		m.live.session.Dispose()
	}
	m.live.session = nil
	m.live.playback = nil
}

func (m Model) Active() bool { return m.live.session != nil }

// Editing reports whether the note input has focus.
func (m Model) Editing() bool { return m.editing }

func (m *Model) SetLocale(locale string) {
	m.locale = locale
	m.refreshContent()
}

// Suspend freezes the expanded timer while the terminal is unfocused.
func (m Model) Suspend() {
	if timer, ok := m.timer(); ok {
		timer.Suspend()
	}
}

func (m Model) Resume() {
	if timer, ok := m.timer(); ok {
		timer.Resume()
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.live.session == nil {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.note.Width = max(msg.Width-12, 10)

	case tea.MouseMsg:
		timer, ok := m.timer()
		if !ok {
			return m, nil
		}
		// X10 terminals report releases without a button.
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			timer.PointerDown()
		case msg.Action == tea.MouseActionRelease:
			timer.PointerUp()
		}

	case tea.KeyMsg:
		if m.editing {
			return m.updateNote(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// Command runs a palette verb against the workout. It returns false when the
// verb does not apply.
func (m *Model) Command(verb, arg string) (tea.Cmd, bool) {
	if m.live.session == nil {
		return nil, false
	}
	ctx := context.Background()
	timer, hasTimer := m.timer()
	switch verb {
	case "timer:reset":
		if hasTimer {
			timer.Reset()
		}
	case "timer:phase":
		if hasTimer {
			timer.TogglePhase()
		}
	case "video:open":
		return m.startVideo(), true
	case "video:pause":
		if m.live.playback != nil {
			m.live.playback.TogglePause(ctx)
		}
	case "video:retry":
		if m.live.playback != nil {
			if err := m.live.playback.Signal(ctx, "stalled"); err != nil {
				return status(err.Error()), true
			}
		}
	case "video:replay":
		return m.replay(), true
	case "favorite":
		return m.toggleFavorite(), true
	case "note":
		if ex, ok := m.cursorExercise(); ok {
			if err := m.userdata.SetNote(ctx, ex.ID, arg); err != nil {
				return status(err.Error()), true
			}
		}
	case "workout:complete":
		return m.complete(), true
	default:
		return nil, false
	}
	return nil, true
}

func (m Model) View() string {
	if m.live.session == nil {
		return ""
	}
	snap := m.live.session.Snapshot()
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.t("workoutName")+" "+snap.Title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s: %d  ·  %s: 40s  ·  %s: %s",
		m.t("setsRecommended"), snap.Sets, m.t("executionTimeLabel"), m.t("intervalRecommended"), m.t("intervalValue"))) + "\n")
	sb.WriteString(theme.Warn.Render(m.t("intensityTip")) + "\n\n")

	for _, slot := range snap.Slots {
		sb.WriteString(m.renderSlotHeader(slot) + "\n")
		if slot.Expanded {
			sb.WriteString(m.renderExpanded(slot) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Button.Render(m.t("finishWorkout")) + "\n")
	sb.WriteString(theme.Muted.Render("↑/↓ enter  space:tap  r:reset  o:video  v:replay  f:★  n:note  g:guide  c:finish") + "\n")
	return lipgloss.NewStyle().Width(max(m.width, 20)).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	snap := m.live.session.Snapshot()
	timer, hasTimer := m.timer()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(snap.Slots)-1 {
			m.cursor++
		}
	case "enter":
		cmd := m.toggle(m.cursor)
		return m, cmd
	case " ":
		if hasTimer {
			timer.Tap()
		}
	case "r":
		if hasTimer {
			timer.Reset()
		}
	case "o":
		cmd := m.startVideo()
		return m, cmd
	case "v":
		cmd := m.replay()
		return m, cmd
	case "f":
		cmd := m.toggleFavorite()
		return m, cmd
	case "n":
		if ex, ok := m.cursorExercise(); ok {
			m.editing = true
			m.note.SetValue(m.userdata.Note(context.Background(), ex.ID))
			cmd := m.note.Focus()
			return m, cmd
		}
	case "g":
		if ex, ok := m.cursorExercise(); ok {
			id := ex.ID
			return m, func() tea.Msg { return OpenGuideMsg{ExerciseID: id} }
		}
	case "c":
		cmd := m.complete()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNote(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.note.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.note.Blur()
		if ex, ok := m.cursorExercise(); ok {
			if err := m.userdata.SetNote(context.Background(), ex.ID, m.note.Value()); err != nil {
				return m, status(err.Error())
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m *Model) toggle(pos int) tea.Cmd {
	ctx := context.Background()
	if err := m.live.session.ToggleExpanded(pos); err != nil {
		return status(err.Error())
	}
	snap := m.live.session.Snapshot()
	if m.live.playback == nil {
		return nil
	}
	if snap.Expanded == -1 {
		m.live.playback.Stop(ctx)
		return nil
	}
	slot := snap.Slots[snap.Expanded]
	m.live.playback.Stop(ctx)
	m.live.playback.Load(slot.Exercise.VideoURL)
	m.live.playback.SetFinished(ctx, slot.VideoFinished)
	return nil
}

func (m *Model) startVideo() tea.Cmd {
	if m.live.playback == nil || m.live.session.Snapshot().Expanded == -1 {
		return nil
	}
	m.live.playback.Start(context.Background())
	return nil
}

func (m *Model) replay() tea.Cmd {
	pos := m.live.session.Snapshot().Expanded
	if pos == -1 {
		return nil
	}
	if err := m.live.session.AcknowledgeVideoReset(pos); err != nil {
		return status(err.Error())
	}
	if m.live.playback != nil {
		m.live.playback.SetFinished(context.Background(), false)
	}
	return nil
}

func (m *Model) toggleFavorite() tea.Cmd {
	ex, ok := m.cursorExercise()
	if !ok {
		return nil
	}
	if _, err := m.userdata.ToggleFavorite(context.Background(), ex.ID); err != nil {
		return status(err.Error())
	}
	return nil
}

func (m *Model) complete() tea.Cmd {
	err := m.live.session.Complete(context.Background())
	m.Detach()
	return func() tea.Msg { return CompletedMsg{Err: err} }
}

func (m Model) timer() (timerTarget, bool) {
	if m.live.session == nil {
		return nil, false
	}
	timer, ok := m.live.session.Timer()
	if !ok {
		return nil, false
	}
	return timer, true
}

// timerTarget is the part of the timer use-case the view drives.
type timerTarget interface {
	PointerDown()
	PointerUp()
	Tap()
	Reset()
	TogglePhase()
	Suspend()
	Resume()
	State() timerdto.State
}

func (m Model) cursorExercise() (sessiondto.ExerciseOutput, bool) {
	snap := m.live.session.Snapshot()
	if m.cursor < 0 || m.cursor >= len(snap.Slots) {
		return sessiondto.ExerciseOutput{}, false
	}
	return snap.Slots[m.cursor].Exercise, true
}

func (m *Model) refreshContent() {
	if m.live.session == nil || m.catalog == nil {
		return
	}
	content := map[string]catalogdto.ExerciseOutput{}
	for _, slot := range m.live.session.Snapshot().Slots {
		if _, ok := content[slot.Exercise.ID]; ok {
			continue
		}
		if ex, err := m.catalog.Exercise(context.Background(), slot.Exercise.ID, m.locale); err == nil {
			content[ex.ID] = ex
		}
	}
	m.content = content
}

func (m Model) t(key string) string {
	if m.catalog == nil {
		return key
	}
	return m.catalog.T(key, m.locale)
}

func (m Model) exercise(slot sessiondto.SlotOutput) catalogdto.ExerciseOutput {
	if ex, ok := m.content[slot.Exercise.ID]; ok {
		return ex
	}
	ex := slot.Exercise
	return catalogdto.ExerciseOutput{ID: ex.ID, Name: ex.Name, ShortDescription: ex.ShortDescription, Objective: ex.Objective, QuickFix: ex.QuickFix, Steps: ex.Steps, VideoURL: ex.VideoURL}
}

func (m Model) renderSlotHeader(slot sessiondto.SlotOutput) string {
	ex := m.exercise(slot)
	marker := "▸"
	if slot.Expanded {
		marker = "▾"
	}
	line := fmt.Sprintf("%s %02d %s %s", marker, slot.Position+1, ex.Icon, ex.Name)
	if m.userdata != nil && m.userdata.IsFavorite(context.Background(), ex.ID) {
		line += " ★"
	}
	if slot.VideoFinished {
		line += "  " + theme.Good.Render("✔ "+m.t("setFinished"))
	}
	if slot.Position == m.cursor {
		return theme.Hot.Render(line)
	}
	return line
}

func (m Model) renderExpanded(slot sessiondto.SlotOutput) string {
	ex := m.exercise(slot)
	var sb strings.Builder
	sb.WriteString(ex.ShortDescription + "\n")
	if ex.Objective != "" {
		sb.WriteString(theme.Muted.Render(m.t("objectiveLabel")+": ") + ex.Objective + "\n")
	}
	if ex.QuickFix != "" {
		sb.WriteString(theme.Warn.Render(m.t("quickFixLabel")+" ") + ex.QuickFix + "\n")
	}
	if m.editing && slot.Position == m.cursor {
		sb.WriteString(theme.Muted.Render(m.t("noteLabel")+": ") + m.note.View() + "\n")
	} else if note := m.userdata.Note(context.Background(), ex.ID); note != "" {
		sb.WriteString(theme.Muted.Render(m.t("noteLabel")+": ") + note + "\n")
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.renderVideo(slot), " ", m.renderTimer())
	sb.WriteString(panels)
	return lipgloss.NewStyle().PaddingLeft(3).Render(sb.String())
}

func (m Model) renderVideo(slot sessiondto.SlotOutput) string {
	var body string
	switch {
	case slot.VideoFinished:
		body = theme.Good.Render(m.t("timeUp")) + "\n" + m.t("keepGoing") + "\n" + theme.Muted.Render("v: "+m.t("watchNow"))
	case m.live.playback == nil:
		body = theme.Muted.Render(m.t("demoVideo"))
	default:
		st := m.live.playback.Status()
		switch st.Status {
		case "empty":
			body = theme.Muted.Render(m.t("demoVideo"))
		case "playing":
			body = theme.Good.Render("▶ "+m.t("playing")) + "\n" + theme.Muted.Render(st.Source.Provider)
		case "paused":
			body = theme.Warn.Render("❚❚ " + m.t("paused"))
		case "stalled":
			body = theme.Warn.Render(m.t("loadingVideo"))
		default:
			body = m.t("tapToWatch") + "\n" + theme.Muted.Render("o: "+m.t("openVideo")+" ("+st.Source.Provider+")")
		}
	}
	return theme.Pane.Width(30).Render(body)
}

func (m Model) renderTimer() string {
	timer, ok := m.timer()
	if !ok {
		return ""
	}
	st := timer.State()
	clock := theme.Clock.Render(st.Clock)
	phase := m.t("serie")
	if st.Phase == "rest" {
		clock = theme.ClockRest.Render(st.Clock)
		phase = m.t("intervalo")
	}
	lines := []string{theme.Muted.Render(phase), clock}
	if st.CueKey != "" {
		lines = append(lines, theme.Hot.Render(m.t(st.CueKey)))
	}
	lines = append(lines, theme.Muted.Render(m.t(st.HintKey)))
	style := theme.Pane
	if st.GoalReached {
		style = theme.PaneActive
	}
	return style.Width(34).Render(strings.Join(lines, "\n"))
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
