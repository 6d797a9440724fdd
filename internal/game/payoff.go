// Package game derives zero-sum payoff matrices from a match ledger
// and models replicator dynamics over them.
package game

import "github.com/san-kum/evoarena/internal/ledger"

// Payoff is the two-player zero-sum payoff pair for one opening.
// Entries are probabilities in [0,1]; B = 1 - A elementwise. Self-play
// is a draw: the diagonal of A is fixed at 0.5 regardless of data.
type Payoff struct {
	Opening    string      `json:"opening"`
	Strategies []string    `json:"strategies"`
	A          [][]float64 `json:"a"`
	B          [][]float64 `json:"b"`
}

// NewPayoff builds the payoff pair for one opening, using the same
// single-record matchup lookup as the matchup matrix: A[i][j] is the
// recorded Win % of (Si, Sj, opening) scaled to [0,1], 0 when absent.
func NewPayoff(l *ledger.Ledger, opening string) *Payoff {
	strategies := l.Strategies()
	n := len(strategies)

	p := &Payoff{
		Opening:    opening,
		Strategies: strategies,
		A:          make([][]float64, n),
		B:          make([][]float64, n),
	}

	for i := range p.A {
		p.A[i] = make([]float64, n)
		p.B[i] = make([]float64, n)
	}

	for i, s1 := range strategies {
		for j, s2 := range strategies {
			if i == j {
				p.A[i][j] = 0.5
			} else if r, err := l.Matchup(s1, s2, opening); err == nil {
				p.A[i][j] = r.WinPercent / 100.0
			}
			p.B[i][j] = 1.0 - p.A[i][j]
		}
	}

	return p
}

// Size returns the number of strategies.
func (p *Payoff) Size() int { return len(p.Strategies) }
