package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/prateekn/ecosim/internal/eco"
	"github.com/prateekn/ecosim/internal/impact"
)

const (
	defaultPlotWidth  = 80
	defaultPlotHeight = 10
	barWidth          = 40
)

// SeriesPlot renders one population series as an ascii line chart.
func SeriesPlot(data []float64, caption string) string {
	if len(data) == 0 {
		return "no data"
	}
	return asciigraph.Plot(data,
		asciigraph.Height(defaultPlotHeight),
		asciigraph.Width(defaultPlotWidth),
		asciigraph.Caption(caption),
	)
}

// PopulationPlots renders the three species series plus the combined
// total, one chart per series.
func PopulationPlots(trace *eco.Trace) string {
	var b strings.Builder
	for _, species := range eco.SeriesNames {
		b.WriteString(SeriesPlot(trace.Series(species), species+" over time"))
		b.WriteString("\n\n")
	}
	b.WriteString(SeriesPlot(trace.Totals(), "total population over time"))
	b.WriteString("\n")
	return b.String()
}

// ImpactBars renders the abiotic-factor scores as grouped horizontal
// bars, one group per factor.
func ImpactBars(scores []impact.Score) string {
	var b strings.Builder
	for _, s := range scores {
		b.WriteString(ValueStyle.Render(s.Factor))
		b.WriteString("\n")
		b.WriteString(bar("plants", s.Plants))
		b.WriteString(bar("herbivores", s.Herbivores))
		b.WriteString(bar("predators", s.Predators))
		b.WriteString("\n")
	}
	return b.String()
}

func bar(species string, score float64) string {
	clamped := score
	if clamped < 0 {
		clamped = 0
	} else if clamped > 1 {
		clamped = 1
	}
	filled := int(clamped * barWidth)

	cells := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("  %-12s %s %.2f\n", species, SpeciesStyle(species).Render(cells), score)
}
