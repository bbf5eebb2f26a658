package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	nutritiondto "chestdef/internal/modules/nutrition/dto"
	"chestdef/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Calculate(input nutritiondto.CalculateInput) (nutritiondto.CalculateOutput, error)
	Levels() []nutritiondto.LevelOutput
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldSex = iota
	fieldAge
	fieldWeight
	fieldHeight
	fieldActivity
	fieldCount
)

// Model is the TDEE form and its result panel.
type Model struct {
	port     Port
	t        func(string) string
	inputs   [3]textinput.Model
	levels   []nutritiondto.LevelOutput
	focus    int
	female   bool
	activity int
	result   *nutritiondto.CalculateOutput
	err      error
	width    int
}

func New(port Port) Model {
	m := Model{port: port, t: func(k string) string { return k }}
	for i, placeholder := range []string{"25", "75", "175"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 5
		ti.Width = 8
		m.inputs[i] = ti
	}
	if port != nil {
		m.levels = port.Levels()
	}
	return m
}

// SetTranslator sets the label lookup for the current locale.
func (m *Model) SetTranslator(t func(string) string) {
	if t != nil {
		m.t = t
	}
}

// Editing reports whether a text field has focus, in which case global key
// bindings must yield.
func (m Model) Editing() bool {
	return m.focus >= fieldAge && m.focus <= fieldHeight
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "shift+tab":
			cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd
		case "down", "tab":
			cmd := m.setFocus((m.focus + 1) % fieldCount)
			return m, cmd
		case "enter":
			m.calculate()
			return m, nil
		case "left", "right":
			switch m.focus {
			case fieldSex:
				m.female = !m.female
				return m, nil
			case fieldActivity:
				if n := len(m.levels); n > 0 {
					step := 1
					if msg.String() == "left" {
						step = n - 1
					}
					m.activity = (m.activity + step) % n
				}
				return m, nil
			}
		}
	}
	if m.Editing() {
		var cmd tea.Cmd
		i := m.focus - fieldAge
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	t := m.t
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(t("calcTitle")) + "\n\n")

	sex := t("male")
	if m.female {
		sex = t("female")
	}
	rows := []struct {
		field int
		label string
		value string
	}{
		{fieldSex, t("genderLabel"), "‹ " + sex + " ›"},
		{fieldAge, t("ageLabel"), m.inputs[0].View()},
		{fieldWeight, t("weightLabel"), m.inputs[1].View()},
		{fieldHeight, t("heightLabel"), m.inputs[2].View()},
		{fieldActivity, t("activityLabel"), "‹ " + m.activityLabel() + " ›"},
	}
	for _, row := range rows {
		label := theme.Muted.Render(fmt.Sprintf("%-22s", row.label))
		if row.field == m.focus {
			label = theme.Hot.Render(fmt.Sprintf("%-22s", row.label))
		}
		sb.WriteString(label + " " + row.value + "\n")
	}
	sb.WriteString("\n" + theme.Button.Render(t("calculateNow")) + "\n\n")

	if m.err != nil {
		sb.WriteString(theme.Warn.Render(m.err.Error()) + "\n")
	}
	if r := m.result; r != nil {
		sb.WriteString(m.renderResult(*r))
	}
	return lipgloss.NewStyle().Width(max(m.width, 20)).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field-fieldAge {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) activityLabel() string {
	if m.activity < len(m.levels) {
		return m.t(m.levels[m.activity].Key)
	}
	return ""
}

func (m *Model) calculate() {
	values := make([]float64, len(m.inputs))
	for i, in := range m.inputs {
		raw := strings.TrimSpace(strings.ReplaceAll(in.Value(), ",", "."))
		if raw == "" {
			raw = in.Placeholder
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.err = fmt.Errorf("%q is not a number", raw)
			m.result = nil
			return
		}
		values[i] = v
	}
	sex := "male"
	if m.female {
		sex = "female"
	}
	mult := 1.2
	if m.activity < len(m.levels) {
		mult = m.levels[m.activity].Multiplier
	}
	out, err := m.port.Calculate(nutritiondto.CalculateInput{
		Sex: sex, Age: values[0], WeightKg: values[1], HeightCm: values[2], Multiplier: mult,
	})
	if err != nil {
		m.err = err
		m.result = nil
		return
	}
	m.err = nil
	m.result = &out
}

func (m Model) renderResult(r nutritiondto.CalculateOutput) string {
	t := m.t
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  %s\n", theme.Muted.Render(t("maintenanceResult")), theme.Good.Render(fmt.Sprintf("%d %s", r.TDEE, t("kcalPerDay")))))
	sb.WriteString(fmt.Sprintf("%s  %s\n\n", theme.Muted.Render(t("cuttingResult")), theme.Hot.Render(fmt.Sprintf("%d %s", r.Cutting, t("kcalPerDay")))))
	sb.WriteString(theme.Title.Render(t("macroTitle")) + "\n")
	sb.WriteString(fmt.Sprintf("  %s %.0fg   %s %dg   %s %dg\n\n", t("proteinLabel"), r.ProteinG, t("fatLabel"), r.FatG, t("carbLabel"), r.CarbsG))
	sb.WriteString(theme.Title.Render(t("comparisonTitle")) + "\n")
	for _, lvl := range r.Levels {
		sb.WriteString(fmt.Sprintf("  %-28s %5d\n", t(lvl.Key), lvl.TDEE))
	}
	sb.WriteString("\n" + theme.Muted.Render(t("nutritionistNote")) + "\n")
	return sb.String()
}
