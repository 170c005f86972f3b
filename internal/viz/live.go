package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/prateekn/ecosim/internal/eco"
)

const liveGraphHeight = 12

// TickMsg drives the live animation.
type TickMsg time.Time

// LiveModel animates a simulation step by step in the terminal.
type LiveModel struct {
	params eco.Parameters

	state eco.State
	step  int

	plants     []float64
	herbivores []float64
	predators  []float64

	running bool
	done    bool
	speed   int // steps advanced per frame
	fps     int

	width int
}

// NewLiveModel prepares a live view for one parameter set.
func NewLiveModel(params eco.Parameters, fps int) LiveModel {
	if fps <= 0 {
		fps = 10
	}
	return LiveModel{
		params:     params,
		state:      params.Initial(),
		plants:     make([]float64, 0, params.TimeSteps),
		herbivores: make([]float64, 0, params.TimeSteps),
		predators:  make([]float64, 0, params.TimeSteps),
		running:    true,
		speed:      1,
		fps:        fps,
		width:      defaultPlotWidth,
	}
}

func (m LiveModel) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd { return m.tick() }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if !m.done {
				m.running = !m.running
				if m.running {
					return m, m.tick()
				}
			}
		case "r":
			restarted := NewLiveModel(m.params, m.fps)
			restarted.speed = m.speed
			restarted.width = m.width
			return restarted, restarted.tick()
		case "+", "=":
			if m.speed < 32 {
				m.speed *= 2
			}
		case "-":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TickMsg:
		if !m.running || m.done {
			return m, nil
		}
		for i := 0; i < m.speed && m.step < m.params.TimeSteps; i++ {
			m.state = m.params.Step(m.state)
			m.plants = append(m.plants, m.state.Plants)
			m.herbivores = append(m.herbivores, m.state.Herbivores)
			m.predators = append(m.predators, m.state.Predators)
			m.step++
		}
		if m.step >= m.params.TimeSteps {
			m.done = true
			m.running = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m LiveModel) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("ecosystem simulation"))
	b.WriteString("\n")

	status := RunningStyle.Render("running")
	switch {
	case m.done:
		status = DimStyle.Render("finished")
	case !m.running:
		status = PausedStyle.Render("paused")
	}
	fmt.Fprintf(&b, "%s  step %d/%d  speed %dx\n\n", status, m.step, m.params.TimeSteps, m.speed)

	fmt.Fprintf(&b, "%s %s\n",
		PlantStyle.Render(fmt.Sprintf("plants %10.2f", m.state.Plants)),
		DimStyle.Render(sparkline(m.plants)))
	fmt.Fprintf(&b, "%s %s\n",
		HerbStyle.Render(fmt.Sprintf("herbivores %6.2f", m.state.Herbivores)),
		DimStyle.Render(sparkline(m.herbivores)))
	fmt.Fprintf(&b, "%s %s\n\n",
		PredatorStyle.Render(fmt.Sprintf("predators %7.2f", m.state.Predators)),
		DimStyle.Render(sparkline(m.predators)))

	if len(m.plants) > 1 {
		graph := asciigraph.PlotMany(
			[][]float64{m.plants, m.herbivores, m.predators},
			asciigraph.Height(liveGraphHeight),
			asciigraph.Width(graphWidth(m.width)),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow, asciigraph.Red),
			asciigraph.Caption("plants / herbivores / predators"),
		)
		b.WriteString(graph)
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("space pause · r restart · +/- speed · q quit"))
	b.WriteString("\n")
	return b.String()
}

func graphWidth(termWidth int) int {
	w := termWidth - 10
	if w < 40 {
		w = 40
	}
	if w > defaultPlotWidth {
		w = defaultPlotWidth
	}
	return w
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline compresses a series into a short inline trend indicator.
func sparkline(data []float64) string {
	const cells = 30
	if len(data) == 0 {
		return ""
	}

	sampled := data
	if len(data) > cells {
		sampled = make([]float64, cells)
		for i := range sampled {
			sampled[i] = data[i*len(data)/cells]
		}
	}

	lo, hi := sampled[0], sampled[0]
	for _, v := range sampled {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, v := range sampled {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
