// Package matrix builds win-rate matrices from a match ledger.
package matrix

import "github.com/san-kum/evoarena/internal/ledger"

// Matrix is a labeled float matrix. Row and column label order is the
// ledger's fixed strategy/opening ordering, identical across every
// matrix derived in one run.
type Matrix struct {
	Rows  []string    `json:"rows"`
	Cols  []string    `json:"cols"`
	Cells [][]float64 `json:"cells"`
}

// New returns a zeroed matrix with the given axis labels.
func New(rows, cols []string) *Matrix {
	cells := make([][]float64, len(rows))
	for i := range cells {
		cells[i] = make([]float64, len(cols))
	}
	return &Matrix{Rows: rows, Cols: cols, Cells: cells}
}

// At returns the cell at (row, col).
func (m *Matrix) At(row, col int) float64 { return m.Cells[row][col] }

// StrategyOpening computes the strategy×opening win-rate matrix.
// A cell is populated only when the strategy has both outgoing and
// incoming records under the opening; a strategy needs offensive and
// defensive data before it gets a non-zero entry. A zero total-game
// denominator also yields 0.
func StrategyOpening(l *ledger.Ledger) *Matrix {
	m := New(l.Strategies(), l.Openings())

	for i, s := range m.Rows {
		for j, o := range m.Cols {
			outgoing := l.ByStrategyOpening(s, o)
			incoming := l.ByOpponentOpening(s, o)
			if len(outgoing) == 0 || len(incoming) == 0 {
				continue
			}

			winsFor := 0
			for _, r := range outgoing {
				winsFor += r.Wins
			}
			winsAgainst := 0
			for _, r := range incoming {
				winsAgainst += r.Wins
			}

			if total := winsFor + winsAgainst; total > 0 {
				m.Cells[i][j] = 100.0 * float64(winsFor) / float64(total)
			}
		}
	}

	return m
}

// Matchup computes the strategy×strategy matrix for one opening. Each
// off-diagonal cell is the recorded Win % of the single directional
// (row, col, opening) record, taken as-is rather than recomputed from
// wins; a missing record leaves the cell 0. The diagonal stays 0: this
// matrix reports no self-play, unlike the payoff matrix.
func Matchup(l *ledger.Ledger, opening string) *Matrix {
	strategies := l.Strategies()
	m := New(strategies, strategies)

	for i, s1 := range strategies {
		for j, s2 := range strategies {
			if i == j {
				continue
			}
			r, err := l.Matchup(s1, s2, opening)
			if err != nil {
				continue
			}
			m.Cells[i][j] = r.WinPercent
		}
	}

	return m
}

// Matchups computes one matchup matrix per opening, keyed by the
// ledger's opening order.
func Matchups(l *ledger.Ledger) []*Matrix {
	out := make([]*Matrix, 0, len(l.Openings()))
	for _, o := range l.Openings() {
		out = append(out, Matchup(l, o))
	}
	return out
}
