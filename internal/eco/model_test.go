package eco

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestSimulateKnownScenario(t *testing.T) {
	g := NewWithT(t)

	p := Defaults()
	p.TimeSteps = 1

	trace := Simulate(p)

	g.Expect(trace.Len()).To(Equal(1))
	// plants = 100 + 100*0.2*(1+0.5-0.02) - 30*0.01
	g.Expect(trace.Plants[0]).To(BeNumerically("~", 129.3, 1e-9))
	// herbivores = 30 + 30*0.1*(1+0.7-1.25) - 10*0.01
	g.Expect(trace.Herbivores[0]).To(BeNumerically("~", 31.25, 1e-9))
	// predators = 10 + 10*0.05*(30/31)
	g.Expect(trace.Predators[0]).To(BeNumerically("~", 10.0+0.5*(30.0/31.0), 1e-9))
}

func TestSimulateDeterministic(t *testing.T) {
	g := NewWithT(t)

	p := Defaults()
	p.TimeSteps = 200
	p.Temperature = -10

	a := Simulate(p)
	b := Simulate(p)

	g.Expect(a.Plants).To(Equal(b.Plants))
	g.Expect(a.Herbivores).To(Equal(b.Herbivores))
	g.Expect(a.Predators).To(Equal(b.Predators))
}

func TestSimulateLengthInvariant(t *testing.T) {
	g := NewWithT(t)

	for _, steps := range []int{1, 10, 50, 200} {
		p := Defaults()
		p.TimeSteps = steps

		trace := Simulate(p)

		g.Expect(trace.Plants).To(HaveLen(steps))
		g.Expect(trace.Herbivores).To(HaveLen(steps))
		g.Expect(trace.Predators).To(HaveLen(steps))
	}
}

func TestSimulateNonNegative(t *testing.T) {
	g := NewWithT(t)

	// A hostile climate drives the herbivore growth multiplier negative;
	// populations must clamp at zero, never cross it.
	p := Defaults()
	p.Temperature = 40
	p.SoilQuality = 0.1
	p.HerbivoreBirthRate = 0.3
	p.InitialHerbivores = 10
	p.InitialPredators = 50
	p.TimeSteps = 200

	trace := Simulate(p)

	for i := 0; i < trace.Len(); i++ {
		g.Expect(trace.Plants[i]).To(BeNumerically(">=", 0), "plants at step %d", i)
		g.Expect(trace.Herbivores[i]).To(BeNumerically(">=", 0), "herbivores at step %d", i)
		g.Expect(trace.Predators[i]).To(BeNumerically(">=", 0), "predators at step %d", i)
	}

	g.Expect(trace.Herbivores[trace.Len()-1]).To(BeZero(), "herbivores should have gone extinct")
}

func TestStepClampsAtZero(t *testing.T) {
	g := NewWithT(t)

	p := Defaults()

	// Offtake exceeds the remaining plant stock mid-run.
	next := p.Step(State{Plants: 0.1, Herbivores: 100, Predators: 50})
	g.Expect(next.Plants).To(BeZero())

	// Predation exceeds the remaining herbivore stock.
	next = p.Step(State{Plants: 100, Herbivores: 0.1, Predators: 50})
	g.Expect(next.Herbivores).To(BeZero())
}

func TestStepUsesPreUpdateSnapshot(t *testing.T) {
	g := NewWithT(t)

	// All three updates read the same pre-step populations. The predator
	// update in particular must see the step-start herbivore count, not
	// the herbivore count produced within the same step.
	p := Defaults()
	p.PredatorBirthRate = 0.2
	p.Temperature = 40
	p.SoilQuality = 0.1
	p.HerbivoreBirthRate = 0.3

	s := State{Plants: 100, Herbivores: 30, Predators: 10}
	next := p.Step(s)

	g.Expect(next.Herbivores).NotTo(BeNumerically("~", s.Herbivores, 1e-6))
	g.Expect(next.Predators).To(BeNumerically("~", 10+10*0.2*(30.0/31.0), 1e-9))
}

func TestPredatorGrowthSaturates(t *testing.T) {
	g := NewWithT(t)

	p := Defaults()
	p.PredatorBirthRate = 0.2

	// The prey response H/(H+1) lies in [0, 1), so per-step predator
	// growth can never exceed rate * current predators.
	for _, herbivores := range []float64{0, 0.5, 1, 30, 1e6} {
		s := State{Plants: 100, Herbivores: herbivores, Predators: 10}
		next := p.Step(s)

		growth := next.Predators - s.Predators
		g.Expect(growth).To(BeNumerically(">=", 0))
		g.Expect(growth).To(BeNumerically("<", p.PredatorBirthRate*s.Predators))
	}
}

func TestTraceSeries(t *testing.T) {
	g := NewWithT(t)

	p := Defaults()
	p.TimeSteps = 10
	trace := Simulate(p)

	g.Expect(trace.Series("plants")).To(Equal(trace.Plants))
	g.Expect(trace.Series("herbivores")).To(Equal(trace.Herbivores))
	g.Expect(trace.Series("predators")).To(Equal(trace.Predators))
	g.Expect(trace.Series("bogus")).To(BeNil())

	totals := trace.Series("total")
	g.Expect(totals).To(HaveLen(10))
	for i := range totals {
		g.Expect(totals[i]).To(BeNumerically("~", trace.Plants[i]+trace.Herbivores[i]+trace.Predators[i], 1e-12))
	}
}
