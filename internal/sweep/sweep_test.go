package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/prateekn/ecosim/internal/eco"
)

func TestRunKeepsOrder(t *testing.T) {
	base := eco.Defaults()
	base.TimeSteps = 30

	cfg := Config{Field: "human_impact", From: 0.0, To: 1.0, Points: 5}

	points, err := Run(context.Background(), base, cfg)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}

	want := []float64{0.0, 0.25, 0.5, 0.75, 1.0}
	for i, p := range points {
		if diff := p.Value - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("point %d value = %g, want %g", i, p.Value, want[i])
		}
		if p.Summary.Steps != 30 {
			t.Errorf("point %d ran %d steps, want 30", i, p.Summary.Steps)
		}
	}
}

func TestRunMatchesSequentialSimulate(t *testing.T) {
	base := eco.Defaults()
	base.TimeSteps = 20

	cfg := Config{Field: "water_availability", From: 0.2, To: 0.8, Points: 4}

	points, err := Run(context.Background(), base, cfg)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	field, _ := eco.FieldByKey("water_availability")
	for i, v := range cfg.Values() {
		p := base
		field.Set(&p, v)
		trace := eco.Simulate(p)

		mean := 0.0
		for _, x := range trace.Plants {
			mean += x
		}
		mean /= float64(len(trace.Plants))

		if diff := points[i].Summary.Species[0].Mean - mean; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("point %d mean plants %g, sequential run got %g", i, points[i].Summary.Species[0].Mean, mean)
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	base := eco.Defaults()

	if _, err := Run(context.Background(), base, Config{Field: "bogus", From: 0, To: 1, Points: 3}); !errors.Is(err, eco.ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}

	if _, err := Run(context.Background(), base, Config{Field: "water_availability", From: 0, To: 1, Points: 1}); err == nil {
		t.Error("expected error for single-point sweep")
	}

	if _, err := Run(context.Background(), base, Config{Field: "water_availability", From: 0, To: 2, Points: 3}); !errors.Is(err, eco.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestFullRange(t *testing.T) {
	cfg, err := FullRange("soil_quality", 10)
	if err != nil {
		t.Fatalf("full range failed: %v", err)
	}
	if cfg.From != 0.1 || cfg.To != 1.0 {
		t.Errorf("range [%g, %g], want [0.1, 1.0]", cfg.From, cfg.To)
	}

	vals := cfg.Values()
	if len(vals) != 10 {
		t.Fatalf("expected 10 values, got %d", len(vals))
	}
	if vals[0] != 0.1 || vals[9] != 1.0 {
		t.Errorf("endpoints %g, %g should match range", vals[0], vals[9])
	}
}
