package dynamics

import "math"

// State is a vector in the state space of an autonomous ODE system.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Sum() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum
}

// System is an autonomous ODE system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Projector is an optional System extension: after every integration
// step the simulator projects the state back onto the system's valid
// manifold (e.g. the population simplex).
type Projector interface {
	Project(x State) State
}

// Integrator advances a system state by one timestep.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator also estimates the local error of each step and
// recommends the next step size for a given tolerance.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

// Config controls timepoint sampling.
type Config struct {
	// Substeps is the number of fixed integration steps taken between
	// consecutive timepoints. With an adaptive integrator it only sets
	// the initial step size.
	Substeps int
	// Adaptive enables error-controlled step sizing. Requires an
	// integrator implementing AdaptiveIntegrator and a positive
	// Tolerance.
	Adaptive  bool
	Tolerance float64
	// ValidateState aborts on NaN/Inf states when set.
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Substeps:      10,
		Tolerance:     1e-6,
		ValidateState: true,
	}
}

// Result is a sampled trajectory: one state per requested timepoint,
// in timepoint order.
type Result struct {
	Times  []float64
	States []State
}

// Linspace returns n evenly spaced points over [start, stop],
// inclusive of both endpoints.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	pts := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	pts[n-1] = stop
	return pts
}
