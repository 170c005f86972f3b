// Package tui implements the interactive parameter editor: a slider
// panel for every ecosystem parameter plus a results screen. Every
// adjustment is clamped to the parameter's declared range, so the
// simulator only ever sees valid inputs.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prateekn/ecosim/internal/config"
	"github.com/prateekn/ecosim/internal/eco"
	"github.com/prateekn/ecosim/internal/stats"
	"github.com/prateekn/ecosim/internal/viz"
)

type screen int

const (
	screenEdit screen = iota
	screenResults
)

// Model is the bubbletea model for the parameter editor.
type Model struct {
	screen screen
	cursor int
	params eco.Parameters

	presets   []string
	presetIdx int

	trace   *eco.Trace
	summary stats.Summary

	width  int
	height int
}

// New starts the editor at the baseline parameters.
func New() Model {
	return Model{
		params:    eco.Defaults(),
		presets:   config.ListPresets(),
		presetIdx: -1,
		width:     80,
		height:    24,
	}
}

// Run launches the interactive editor and blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenResults {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter", "backspace":
			m.screen = screenEdit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(eco.Fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "H":
		m.adjust(-5)
	case "L":
		m.adjust(5)
	case "p":
		m.cyclePreset()
	case "d":
		m.params = eco.Defaults()
		m.presetIdx = -1
	case "enter", " ":
		m.trace = eco.Simulate(m.params)
		m.summary = stats.Summarize(m.trace)
		m.screen = screenResults
	}
	return m, nil
}

func (m *Model) adjust(ticks int) {
	f := eco.Fields[m.cursor]
	f.Set(&m.params, f.Get(&m.params)+float64(ticks)*f.Step)
	m.params.Clamp()
	m.presetIdx = -1
}

func (m *Model) cyclePreset() {
	if len(m.presets) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	if p, ok := config.GetPreset(m.presets[m.presetIdx]); ok {
		m.params = p
	}
}

func (m Model) View() string {
	if m.screen == screenResults {
		return m.resultsView()
	}
	return m.editView()
}

func (m Model) editView() string {
	var b strings.Builder

	b.WriteString(viz.HeaderStyle.Render("ecosim · adjust parameters"))
	b.WriteString("\n")
	if m.presetIdx >= 0 {
		b.WriteString(viz.DimStyle.Render("preset: " + m.presets[m.presetIdx]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, f := range eco.Fields {
		cursor := "  "
		label := viz.LabelStyle.Render(f.Label)
		if i == m.cursor {
			cursor = viz.SelectedStyle.Render("> ")
			label = viz.SelectedStyle.Render(fmt.Sprintf("%-28s", f.Label))
		}

		v := f.Get(&m.params)
		value := fmt.Sprintf("%8.2f", v)
		if f.Integer {
			value = fmt.Sprintf("%8d", int(v))
		}

		fmt.Fprintf(&b, "%s%s %s %s %s\n",
			cursor, label,
			viz.ValueStyle.Render(value),
			viz.DimStyle.Render(slider(v, f.Min, f.Max)),
			viz.DimStyle.Render(fmt.Sprintf("[%g, %g]", f.Min, f.Max)),
		)
	}

	b.WriteString(viz.HelpStyle.Render("j/k select · h/l adjust · H/L coarse · p preset · d defaults · enter run · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultsView() string {
	var b strings.Builder

	b.WriteString(viz.HeaderStyle.Render("ecosim · results"))
	b.WriteString("\n\n")

	if m.trace != nil {
		b.WriteString(viz.PopulationPlots(m.trace))
		b.WriteString("\n")
	}

	for _, s := range m.summary.Species {
		line := fmt.Sprintf("%-12s mean %10.2f   peak %10.2f   final %10.2f", s.Species, s.Mean, s.Peak, s.Final)
		if s.ExtinctionStep >= 0 {
			line += fmt.Sprintf("   extinct at step %d", s.ExtinctionStep)
		}
		b.WriteString(viz.SpeciesStyle(s.Species).Render(line))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n", viz.DimStyle.Render(fmt.Sprintf("mean total %.2f over %d steps", m.summary.MeanTotal, m.summary.Steps)))

	b.WriteString(viz.HelpStyle.Render("esc back · q quit"))
	b.WriteString("\n")
	return b.String()
}

const sliderCells = 20

func slider(v, lo, hi float64) string {
	pos := 0
	if hi > lo {
		pos = int((v - lo) / (hi - lo) * float64(sliderCells-1))
	}
	var b strings.Builder
	for i := 0; i < sliderCells; i++ {
		if i == pos {
			b.WriteString("●")
		} else {
			b.WriteString("─")
		}
	}
	return b.String()
}
