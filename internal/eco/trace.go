package eco

// State is the population triple at one time step. Values are
// non-negative by construction (the step rule clamps at zero).
type State struct {
	Plants     float64
	Herbivores float64
	Predators  float64
}

// Total returns the combined population of all three tiers.
func (s State) Total() float64 {
	return s.Plants + s.Herbivores + s.Predators
}

// Trace holds the per-step population history of one run. The three
// sequences are always equal in length and read-only after Simulate
// returns.
type Trace struct {
	Plants     []float64
	Herbivores []float64
	Predators  []float64
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.Plants) }

// At returns the populations recorded at step i.
func (t *Trace) At(i int) State {
	return State{
		Plants:     t.Plants[i],
		Herbivores: t.Herbivores[i],
		Predators:  t.Predators[i],
	}
}

// Totals returns the per-step combined population.
func (t *Trace) Totals() []float64 {
	totals := make([]float64, t.Len())
	for i := range totals {
		totals[i] = t.Plants[i] + t.Herbivores[i] + t.Predators[i]
	}
	return totals
}

// Series returns the sequence for a species by name: "plants",
// "herbivores", "predators" or "total". Unknown names return nil.
func (t *Trace) Series(name string) []float64 {
	switch name {
	case "plants":
		return t.Plants
	case "herbivores":
		return t.Herbivores
	case "predators":
		return t.Predators
	case "total":
		return t.Totals()
	}
	return nil
}

// SeriesNames lists the species sequences a trace exposes.
var SeriesNames = []string{"plants", "herbivores", "predators"}
