package eco

import "fmt"

// Default parameter values for a stable baseline ecosystem.
const (
	DefaultPlantGrowthRate    = 0.2
	DefaultHerbivoreBirthRate = 0.1
	DefaultPredatorBirthRate  = 0.05
	DefaultInitialPlants      = 100
	DefaultInitialHerbivores  = 30
	DefaultInitialPredators   = 10
	DefaultTimeSteps          = 50
	DefaultWater              = 0.5
	DefaultTemperature        = 25
	DefaultSoilQuality        = 0.7
	DefaultHumanImpact        = 0.2
)

// Parameters holds the immutable inputs of one simulation run.
// Construct it once, validate it at the boundary, then pass it by value.
type Parameters struct {
	PlantGrowthRate    float64 `yaml:"plant_growth_rate" json:"plant_growth_rate"`
	HerbivoreBirthRate float64 `yaml:"herbivore_birth_rate" json:"herbivore_birth_rate"`
	PredatorBirthRate  float64 `yaml:"predator_birth_rate" json:"predator_birth_rate"`
	InitialPlants      float64 `yaml:"initial_plants" json:"initial_plants"`
	InitialHerbivores  float64 `yaml:"initial_herbivores" json:"initial_herbivores"`
	InitialPredators   float64 `yaml:"initial_predators" json:"initial_predators"`
	TimeSteps          int     `yaml:"time_steps" json:"time_steps"`
	Water              float64 `yaml:"water_availability" json:"water_availability"`
	Temperature        float64 `yaml:"temperature_variation" json:"temperature_variation"`
	SoilQuality        float64 `yaml:"soil_quality" json:"soil_quality"`
	HumanImpact        float64 `yaml:"human_impact" json:"human_impact"`
}

// Defaults returns the baseline parameter set.
func Defaults() Parameters {
	return Parameters{
		PlantGrowthRate:    DefaultPlantGrowthRate,
		HerbivoreBirthRate: DefaultHerbivoreBirthRate,
		PredatorBirthRate:  DefaultPredatorBirthRate,
		InitialPlants:      DefaultInitialPlants,
		InitialHerbivores:  DefaultInitialHerbivores,
		InitialPredators:   DefaultInitialPredators,
		TimeSteps:          DefaultTimeSteps,
		Water:              DefaultWater,
		Temperature:        DefaultTemperature,
		SoilQuality:        DefaultSoilQuality,
		HumanImpact:        DefaultHumanImpact,
	}
}

// Field describes one tunable parameter: its range, display label and
// accessors. The descriptor table drives validation, the TUI editor and
// parameter sweeps from a single source.
type Field struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Integer bool
	Get     func(p *Parameters) float64
	Set     func(p *Parameters, v float64)
}

// Fields lists every tunable parameter with its declared valid range.
var Fields = []Field{
	{
		Key: "plant_growth_rate", Label: "plant growth rate",
		Min: 0.01, Max: 0.5, Step: 0.01,
		Get: func(p *Parameters) float64 { return p.PlantGrowthRate },
		Set: func(p *Parameters, v float64) { p.PlantGrowthRate = v },
	},
	{
		Key: "herbivore_birth_rate", Label: "herbivore birth rate",
		Min: 0.01, Max: 0.3, Step: 0.01,
		Get: func(p *Parameters) float64 { return p.HerbivoreBirthRate },
		Set: func(p *Parameters, v float64) { p.HerbivoreBirthRate = v },
	},
	{
		Key: "predator_birth_rate", Label: "predator birth rate",
		Min: 0.01, Max: 0.2, Step: 0.01,
		Get: func(p *Parameters) float64 { return p.PredatorBirthRate },
		Set: func(p *Parameters, v float64) { p.PredatorBirthRate = v },
	},
	{
		Key: "initial_plants", Label: "initial plant population",
		Min: 50, Max: 500, Step: 10,
		Get: func(p *Parameters) float64 { return p.InitialPlants },
		Set: func(p *Parameters, v float64) { p.InitialPlants = v },
	},
	{
		Key: "initial_herbivores", Label: "initial herbivore population",
		Min: 10, Max: 100, Step: 5,
		Get: func(p *Parameters) float64 { return p.InitialHerbivores },
		Set: func(p *Parameters, v float64) { p.InitialHerbivores = v },
	},
	{
		Key: "initial_predators", Label: "initial predator population",
		Min: 5, Max: 50, Step: 1,
		Get: func(p *Parameters) float64 { return p.InitialPredators },
		Set: func(p *Parameters, v float64) { p.InitialPredators = v },
	},
	{
		Key: "time_steps", Label: "simulation duration (steps)",
		Min: 10, Max: 200, Step: 10, Integer: true,
		Get: func(p *Parameters) float64 { return float64(p.TimeSteps) },
		Set: func(p *Parameters, v float64) { p.TimeSteps = int(v) },
	},
	{
		Key: "water_availability", Label: "water availability",
		Min: 0.0, Max: 1.0, Step: 0.05,
		Get: func(p *Parameters) float64 { return p.Water },
		Set: func(p *Parameters, v float64) { p.Water = v },
	},
	{
		Key: "temperature_variation", Label: "temperature variation (°C)",
		Min: -10, Max: 40, Step: 1,
		Get: func(p *Parameters) float64 { return p.Temperature },
		Set: func(p *Parameters, v float64) { p.Temperature = v },
	},
	{
		Key: "soil_quality", Label: "soil quality index",
		Min: 0.1, Max: 1.0, Step: 0.05,
		Get: func(p *Parameters) float64 { return p.SoilQuality },
		Set: func(p *Parameters, v float64) { p.SoilQuality = v },
	},
	{
		Key: "human_impact", Label: "human impact factor",
		Min: 0.0, Max: 1.0, Step: 0.05,
		Get: func(p *Parameters) float64 { return p.HumanImpact },
		Set: func(p *Parameters, v float64) { p.HumanImpact = v },
	},
}

// FieldByKey looks up a parameter descriptor by its key.
func FieldByKey(key string) (Field, error) {
	for _, f := range Fields {
		if f.Key == key {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
}

// FieldKeys returns the parameter keys in declaration order.
func FieldKeys() []string {
	keys := make([]string, 0, len(Fields))
	for _, f := range Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Validate checks every parameter against its declared range.
// The simulator itself assumes validated inputs; callers run this first.
func (p Parameters) Validate() error {
	for _, f := range Fields {
		v := f.Get(&p)
		if v < f.Min || v > f.Max {
			return fmt.Errorf("%w: %s = %g (valid range [%g, %g])",
				ErrParameterBounds, f.Key, v, f.Min, f.Max)
		}
	}
	return nil
}

// Clamp snaps every parameter into its declared range in place.
// The TUI editor uses it so adjustments can never leave the valid region.
func (p *Parameters) Clamp() {
	for _, f := range Fields {
		v := f.Get(p)
		if v < f.Min {
			f.Set(p, f.Min)
		} else if v > f.Max {
			f.Set(p, f.Max)
		}
	}
}
