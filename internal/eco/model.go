package eco

import "math"

// Per-capita offtake applied by each consumer tier: predation pressure
// is a fixed subtraction proportional to the consumer population,
// independent of prey abundance.
const offtakeRate = 0.01

// Step advances the model by one time step and returns the next state.
// All three updates read the pre-update snapshot s, so evaluation order
// within a step cannot leak one tier's update into another. Each result
// is clamped at zero: populations never go negative.
func (p Parameters) Step(s State) State {
	plantBoost := 1 + p.Water - 0.1*p.HumanImpact
	herbBoost := 1 + p.SoilQuality - 0.05*p.Temperature
	// Saturating prey response: approaches 1 as herbivores grow,
	// vanishes with them, and never divides by zero.
	preySat := s.Herbivores / (s.Herbivores + 1)

	return State{
		Plants:     math.Max(s.Plants+s.Plants*p.PlantGrowthRate*plantBoost-s.Herbivores*offtakeRate, 0),
		Herbivores: math.Max(s.Herbivores+s.Herbivores*p.HerbivoreBirthRate*herbBoost-s.Predators*offtakeRate, 0),
		Predators:  math.Max(s.Predators+s.Predators*p.PredatorBirthRate*preySat, 0),
	}
}

// Initial returns the populations the run starts from.
func (p Parameters) Initial() State {
	return State{
		Plants:     p.InitialPlants,
		Herbivores: p.InitialHerbivores,
		Predators:  p.InitialPredators,
	}
}

// Simulate runs the model for p.TimeSteps steps and records the
// post-update populations of every step. The trace always has exactly
// p.TimeSteps entries per species; the raw initial populations are not
// recorded, the first entry is the result of the first update.
//
// Simulate is deterministic and free of side effects: identical
// parameters always produce an identical trace.
func Simulate(p Parameters) *Trace {
	trace := &Trace{
		Plants:     make([]float64, 0, p.TimeSteps),
		Herbivores: make([]float64, 0, p.TimeSteps),
		Predators:  make([]float64, 0, p.TimeSteps),
	}

	s := p.Initial()
	for t := 0; t < p.TimeSteps; t++ {
		s = p.Step(s)
		trace.Plants = append(trace.Plants, s.Plants)
		trace.Herbivores = append(trace.Herbivores, s.Herbivores)
		trace.Predators = append(trace.Predators, s.Predators)
	}

	return trace
}
