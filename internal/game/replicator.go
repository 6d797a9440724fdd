package game

import "github.com/san-kum/evoarena/internal/dynamics"

// Replicator is the two-population replicator-dynamics ODE system for
// a payoff pair (A, B). The state is the concatenation [x | y] of the
// row and column population share vectors:
//
//	dx_i/dt = x_i ((A y)_i - x·A y)
//	dy_j/dt = y_j ((xᵀB)_j - xᵀB y)
//
// The system is autonomous; t is unused.
type Replicator struct {
	payoff *Payoff
}

func NewReplicator(p *Payoff) *Replicator {
	return &Replicator{payoff: p}
}

func (r *Replicator) Dim() int { return 2 * r.payoff.Size() }

func (r *Replicator) Derive(state dynamics.State, t float64) dynamics.State {
	n := r.payoff.Size()
	x := state[:n]
	y := state[n:]

	// Row fitness against the column population.
	rowFitness := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rowFitness[i] += r.payoff.A[i][j] * y[j]
		}
	}
	rowAvg := 0.0
	for i := 0; i < n; i++ {
		rowAvg += x[i] * rowFitness[i]
	}

	// Column fitness against the row population.
	colFitness := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			colFitness[j] += x[i] * r.payoff.B[i][j]
		}
	}
	colAvg := 0.0
	for j := 0; j < n; j++ {
		colAvg += y[j] * colFitness[j]
	}

	d := make(dynamics.State, 2*n)
	for i := 0; i < n; i++ {
		d[i] = x[i] * (rowFitness[i] - rowAvg)
		d[n+i] = y[i] * (colFitness[i] - colAvg)
	}
	return d
}

// Project clamps both population halves at zero and renormalizes each
// to the unit simplex, keeping integration drift out of the reported
// shares.
func (r *Replicator) Project(state dynamics.State) dynamics.State {
	n := r.payoff.Size()
	out := state.Clone()
	normalizeSimplex(out[:n])
	normalizeSimplex(out[n:])
	return out
}

// RowShares extracts the row-population share vector from a state.
func (r *Replicator) RowShares(state dynamics.State) []float64 {
	n := r.payoff.Size()
	shares := make([]float64, n)
	copy(shares, state[:n])
	return shares
}

// UniformState returns the uniform initial condition [1/n ... | 1/n ...]
// for both populations.
func (r *Replicator) UniformState() dynamics.State {
	n := r.payoff.Size()
	state := make(dynamics.State, 2*n)
	for i := range state {
		state[i] = 1.0 / float64(n)
	}
	return state
}

func normalizeSimplex(v []float64) {
	sum := 0.0
	for i, val := range v {
		if val < 0 {
			v[i] = 0
			val = 0
		}
		sum += val
	}
	if sum <= 0 {
		// Collapsed population; leave for the simulator's validation
		// to surface as a dynamics error.
		return
	}
	for i := range v {
		v[i] /= sum
	}
}
