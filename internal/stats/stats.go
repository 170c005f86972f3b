// Package stats computes summary metrics over a population trace.
package stats

import "github.com/prateekn/ecosim/internal/eco"

// Metric accumulates one summary value over the steps of a trace.
type Metric interface {
	Name() string
	Observe(s eco.State, step int)
	Value() float64
	Reset()
}

// Collect runs every metric over the trace and returns name -> value.
func Collect(trace *eco.Trace, metrics ...Metric) map[string]float64 {
	for _, m := range metrics {
		m.Reset()
	}
	for i := 0; i < trace.Len(); i++ {
		s := trace.At(i)
		for _, m := range metrics {
			m.Observe(s, i)
		}
	}
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Mean is the arithmetic mean of one species' sequence.
type Mean struct {
	species string
	sum     float64
	samples int
}

func NewMean(species string) *Mean {
	return &Mean{species: species}
}

func (m *Mean) Name() string { return "mean_" + m.species }

func (m *Mean) Observe(s eco.State, step int) {
	m.sum += pick(s, m.species)
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// Peak is the maximum population a species reaches over the run.
type Peak struct {
	species string
	max     float64
}

func NewPeak(species string) *Peak {
	return &Peak{species: species}
}

func (p *Peak) Name() string { return "peak_" + p.species }

func (p *Peak) Observe(s eco.State, step int) {
	if v := pick(s, p.species); v > p.max {
		p.max = v
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }

// Extinction records the first step a species hits zero, or -1 if it
// never does.
type Extinction struct {
	species string
	step    int
}

func NewExtinction(species string) *Extinction {
	return &Extinction{species: species, step: -1}
}

func (e *Extinction) Name() string { return "extinction_" + e.species }

func (e *Extinction) Observe(s eco.State, step int) {
	if e.step < 0 && pick(s, e.species) == 0 {
		e.step = step
	}
}

func (e *Extinction) Value() float64 { return float64(e.step) }

func (e *Extinction) Reset() { e.step = -1 }

func pick(s eco.State, species string) float64 {
	switch species {
	case "plants":
		return s.Plants
	case "herbivores":
		return s.Herbivores
	case "predators":
		return s.Predators
	case "total":
		return s.Total()
	}
	return 0
}
