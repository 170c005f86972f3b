package config

import (
	"sort"

	"github.com/prateekn/ecosim/internal/eco"
)

// Presets are named starting points for common ecosystem scenarios.
var Presets = map[string]eco.Parameters{
	"baseline": eco.Defaults(),
	"drought": withDefaults(func(p *eco.Parameters) {
		p.Water = 0.05
		p.Temperature = 38
		p.SoilQuality = 0.3
		p.TimeSteps = 100
	}),
	"heatwave": withDefaults(func(p *eco.Parameters) {
		p.Temperature = 40
		p.HerbivoreBirthRate = 0.15
		p.TimeSteps = 150
	}),
	"pristine": withDefaults(func(p *eco.Parameters) {
		p.Water = 0.9
		p.SoilQuality = 1.0
		p.HumanImpact = 0.0
		p.Temperature = 15
	}),
	"overrun": withDefaults(func(p *eco.Parameters) {
		p.HumanImpact = 1.0
		p.InitialPlants = 60
		p.InitialHerbivores = 90
		p.TimeSteps = 120
	}),
	"predator_boom": withDefaults(func(p *eco.Parameters) {
		p.PredatorBirthRate = 0.2
		p.InitialPredators = 50
		p.InitialHerbivores = 20
		p.TimeSteps = 150
	}),
	"cold_snap": withDefaults(func(p *eco.Parameters) {
		p.Temperature = -10
		p.Water = 0.3
		p.TimeSteps = 100
	}),
}

func withDefaults(mutate func(*eco.Parameters)) eco.Parameters {
	p := eco.Defaults()
	mutate(&p)
	return p
}

// GetPreset returns a named preset, or false when the name is unknown.
func GetPreset(name string) (eco.Parameters, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns the preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
