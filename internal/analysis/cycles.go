package analysis

// Cycle describes the dominant oscillation of a population series.
type Cycle struct {
	Period   float64 // in time steps; 0 when no oscillation is found
	Power    float64 // spectral magnitude at the dominant bin
	Spectrum []float64
}

// DominantCycle detrends the series, computes its power spectrum and
// locates the strongest non-DC component. Series shorter than 4 steps
// carry no usable cycle information.
func DominantCycle(series []float64) Cycle {
	if len(series) < 4 {
		return Cycle{}
	}

	ps := PowerSpectrum(Detrend(series))

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	if maxIdx == 0 || maxPower == 0 {
		return Cycle{Spectrum: ps}
	}

	// Bin k of an n-point transform corresponds to period n/k steps.
	n := 2 * len(ps)
	return Cycle{
		Period:   float64(n) / float64(maxIdx),
		Power:    maxPower,
		Spectrum: ps,
	}
}
