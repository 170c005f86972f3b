package impact

import (
	"math"
	"testing"

	"github.com/prateekn/ecosim/internal/eco"
)

func TestScoresDefaults(t *testing.T) {
	scores := Scores(eco.Defaults())

	if len(scores) != 4 {
		t.Fatalf("expected 4 factors, got %d", len(scores))
	}

	approx := func(name string, got, want float64) {
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %g, want %g", name, got, want)
		}
	}

	water := scores[0]
	approx("water/plants", water.Plants, 0.5)
	approx("water/herbivores", water.Herbivores, 0.4)
	approx("water/predators", water.Predators, 0.25)

	temp := scores[1]
	approx("temperature/plants", temp.Plants, 1-25.0/40)
	approx("temperature/herbivores", temp.Herbivores, 1-25.0/50)
	approx("temperature/predators", temp.Predators, 1-25.0/60)

	soil := scores[2]
	approx("soil/plants", soil.Plants, 0.7)
	approx("soil/herbivores", soil.Herbivores, 0.49)
	approx("soil/predators", soil.Predators, 0.21)

	human := scores[3]
	approx("human/plants", human.Plants, 0.8)
	approx("human/herbivores", human.Herbivores, 0.88)
	approx("human/predators", human.Predators, 0.96)
}

func TestScoresAreLinearInInputs(t *testing.T) {
	p := eco.Defaults()
	p.Temperature = 40
	p.HumanImpact = 1.0

	scores := Scores(p)

	// Maximum temperature zeroes out the plant temperature score.
	if scores[1].Plants != 0 {
		t.Errorf("temperature/plants at 40°C = %g, want 0", scores[1].Plants)
	}
	// Maximum human impact zeroes out the plant human-impact score.
	if scores[3].Plants != 0 {
		t.Errorf("human/plants at full impact = %g, want 0", scores[3].Plants)
	}
}
