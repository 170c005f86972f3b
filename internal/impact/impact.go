// Package impact derives abiotic-factor impact scores from the input
// parameters. The scores come from fixed linear formulas over the four
// environmental modifiers, not from the simulation trace; they feed the
// grouped factor chart and table.
package impact

import "github.com/prateekn/ecosim/internal/eco"

// Score rates one abiotic factor's effect on each biotic tier.
type Score struct {
	Factor     string
	Plants     float64
	Herbivores float64
	Predators  float64
}

// Scores returns the factor table for a parameter set. Row order is
// fixed: water, temperature, soil, human impact.
func Scores(p eco.Parameters) []Score {
	return []Score{
		{
			Factor:     "water availability",
			Plants:     p.Water,
			Herbivores: p.Water * 0.8,
			Predators:  p.Water * 0.5,
		},
		{
			Factor:     "temperature variation",
			Plants:     1 - p.Temperature/40,
			Herbivores: 1 - p.Temperature/50,
			Predators:  1 - p.Temperature/60,
		},
		{
			Factor:     "soil quality",
			Plants:     p.SoilQuality,
			Herbivores: p.SoilQuality * 0.7,
			Predators:  p.SoilQuality * 0.3,
		},
		{
			Factor:     "human impact",
			Plants:     1 - p.HumanImpact,
			Herbivores: 1 - p.HumanImpact*0.6,
			Predators:  1 - p.HumanImpact*0.2,
		},
	}
}
