// Package score computes aggregate strategy performance over a ledger.
package score

import (
	"fmt"
	"sort"

	"github.com/san-kum/evoarena/internal/ledger"
)

// Entry is one strategy's overall win percentage across all opponents
// and openings.
type Entry struct {
	Strategy   string  `json:"strategy"`
	Percentage float64 `json:"percentage"`
}

// Overall computes each strategy's aggregate win percentage:
// 100 * wins / (wins + losses), 0 when the strategy has no games.
// Entries follow the ledger's strategy ordering.
func Overall(l *ledger.Ledger) []Entry {
	strategies := l.Strategies()
	entries := make([]Entry, 0, len(strategies))

	for _, s := range strategies {
		totalWins := 0
		for _, r := range l.ByStrategy(s) {
			totalWins += r.Wins
		}
		totalGames := totalWins
		for _, r := range l.ByOpponent(s) {
			totalGames += r.Wins
		}

		pct := 0.0
		if totalGames > 0 {
			pct = 100.0 * float64(totalWins) / float64(totalGames)
		}
		entries = append(entries, Entry{Strategy: s, Percentage: pct})
	}

	return entries
}

// Ranked returns entries sorted descending by percentage. The sort is
// stable, so ties keep first-seen ledger order.
func Ranked(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})
	return ranked
}

// ReportLines renders entries as console report lines.
func ReportLines(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %.2f%%", e.Strategy, e.Percentage))
	}
	return lines
}
