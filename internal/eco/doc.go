// Package eco implements the three-tier ecosystem model.
//
// The package defines the fundamental types for a discrete-time
// simulation of coupled plant, herbivore and predator populations:
//
//   - [Parameters]: immutable per-run inputs with declared valid ranges
//   - [State]: population triple at one time step
//   - [Trace]: the full per-step population history of one run
//
// # Example
//
//	p := eco.Defaults()
//	p.HumanImpact = 0.8
//	trace := eco.Simulate(p)
//
// # Thread Safety
//
// Simulate is a pure function over its parameter value: it holds no
// state, so concurrent calls with distinct parameter sets are safe.
package eco
