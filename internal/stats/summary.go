package stats

import "github.com/prateekn/ecosim/internal/eco"

// SpeciesSummary condenses one species' sequence for display.
type SpeciesSummary struct {
	Species        string
	Mean           float64
	Peak           float64
	Final          float64
	ExtinctionStep int // -1 if the species never hit zero
}

// Summary is the per-run key-highlights block.
type Summary struct {
	Species   []SpeciesSummary
	MeanTotal float64
	Steps     int
}

// Summarize computes the display summary for a finished run.
func Summarize(trace *eco.Trace) Summary {
	out := Summary{Steps: trace.Len()}

	for _, species := range eco.SeriesNames {
		mean := NewMean(species)
		peak := NewPeak(species)
		ext := NewExtinction(species)
		Collect(trace, mean, peak, ext)

		final := 0.0
		if trace.Len() > 0 {
			final = trace.Series(species)[trace.Len()-1]
		}

		out.Species = append(out.Species, SpeciesSummary{
			Species:        species,
			Mean:           mean.Value(),
			Peak:           peak.Value(),
			Final:          final,
			ExtinctionStep: int(ext.Value()),
		})
	}

	meanTotal := NewMean("total")
	Collect(trace, meanTotal)
	out.MeanTotal = meanTotal.Value()

	return out
}
