// Package sweep runs the simulator across a range of values for one
// parameter. Runs execute concurrently: the simulator is pure and
// reentrant, so each goroutine only touches its own parameter copy and
// result slot.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/prateekn/ecosim/internal/eco"
	"github.com/prateekn/ecosim/internal/stats"
)

// Point is one sweep sample: the parameter value it ran with and the
// summary of the resulting trace.
type Point struct {
	Value   float64
	Summary stats.Summary
}

// Config describes a sweep over one parameter field.
type Config struct {
	Field  string  // parameter key, see eco.Fields
	From   float64 // first value (inclusive)
	To     float64 // last value (inclusive)
	Points int     // number of evenly spaced samples, >= 2
}

// Values returns the sampled parameter values in order.
func (c Config) Values() []float64 {
	vals := make([]float64, c.Points)
	step := (c.To - c.From) / float64(c.Points-1)
	for i := range vals {
		vals[i] = c.From + float64(i)*step
	}
	return vals
}

func (c Config) validate(f eco.Field) error {
	if c.Points < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", c.Points)
	}
	if c.From > c.To {
		return fmt.Errorf("sweep range inverted: from %g > to %g", c.From, c.To)
	}
	if c.From < f.Min || c.To > f.Max {
		return fmt.Errorf("%w: sweep range [%g, %g] outside %s range [%g, %g]",
			eco.ErrParameterBounds, c.From, c.To, f.Key, f.Min, f.Max)
	}
	return nil
}

// Run executes the sweep over base, varying only the swept field. The
// returned points keep sweep order regardless of which run finishes
// first.
func Run(ctx context.Context, base eco.Parameters, cfg Config) ([]Point, error) {
	field, err := eco.FieldByKey(cfg.Field)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(field); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	values := cfg.Values()
	points := make([]Point, len(values))

	var wg sync.WaitGroup
	for i, v := range values {
		wg.Add(1)
		go func(idx int, value float64) {
			defer wg.Done()

			p := base
			field.Set(&p, value)

			trace := eco.Simulate(p)
			points[idx] = Point{Value: value, Summary: stats.Summarize(trace)}
		}(i, v)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// FullRange builds a sweep config spanning the field's whole declared
// range.
func FullRange(fieldKey string, points int) (Config, error) {
	f, err := eco.FieldByKey(fieldKey)
	if err != nil {
		return Config{}, err
	}
	return Config{Field: fieldKey, From: f.Min, To: f.Max, Points: points}, nil
}
