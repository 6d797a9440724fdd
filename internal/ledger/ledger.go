package ledger

import "fmt"

// Record is one directional matchup-under-opening result: Wins is the
// number of games Strategy won against Opponent under Opening. The
// mirror record is expected to exist separately and is never derived.
type Record struct {
	Strategy   string
	Opponent   string
	Opening    string
	Wins       int
	WinPercent float64
	// HasWinPercent distinguishes an absent Win % cell from a literal 0.
	HasWinPercent bool
}

type matchupKey struct {
	strategy, opponent, opening string
}

// Ledger is an immutable, pre-indexed view over match records.
// Outgoing and incoming record lists are built once per strategy so
// aggregate passes never rescan the full table.
type Ledger struct {
	records    []Record
	strategies []string
	openings   []string
	outgoing   map[string][]int
	incoming   map[string][]int
	matchups   map[matchupKey]int
}

// New validates records and builds the index. Strategy and opening
// order is insertion order of first appearance (strategies count both
// sides); this order fixes row and column indices for every matrix
// derived from the ledger.
func New(records []Record) (*Ledger, error) {
	l := &Ledger{
		records:  make([]Record, len(records)),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
		matchups: make(map[matchupKey]int),
	}
	copy(l.records, records)

	seenStrategy := make(map[string]bool)
	seenOpening := make(map[string]bool)

	for i, r := range l.records {
		if r.Strategy == "" {
			return nil, fmt.Errorf("%w: record %d: empty strategy", ErrMalformedRecord, i)
		}
		if r.Opponent == "" {
			return nil, fmt.Errorf("%w: record %d: empty opponent", ErrMalformedRecord, i)
		}
		if r.Opening == "" {
			return nil, fmt.Errorf("%w: record %d: empty opening", ErrMalformedRecord, i)
		}
		if r.Wins < 0 {
			return nil, fmt.Errorf("%w: record %d: negative wins (%d)", ErrMalformedRecord, i, r.Wins)
		}

		for _, name := range []string{r.Strategy, r.Opponent} {
			if !seenStrategy[name] {
				seenStrategy[name] = true
				l.strategies = append(l.strategies, name)
			}
		}
		if !seenOpening[r.Opening] {
			seenOpening[r.Opening] = true
			l.openings = append(l.openings, r.Opening)
		}

		l.outgoing[r.Strategy] = append(l.outgoing[r.Strategy], i)
		l.incoming[r.Opponent] = append(l.incoming[r.Opponent], i)

		key := matchupKey{r.Strategy, r.Opponent, r.Opening}
		if _, dup := l.matchups[key]; !dup {
			l.matchups[key] = i
		}
	}

	return l, nil
}

func (l *Ledger) Len() int { return len(l.records) }

// Strategies returns the fixed strategy ordering. The slice is shared;
// callers must not mutate it.
func (l *Ledger) Strategies() []string { return l.strategies }

// Openings returns the fixed opening ordering.
func (l *Ledger) Openings() []string { return l.openings }

// ByStrategy returns all records where the given strategy is the
// record's (winning-side) strategy.
func (l *Ledger) ByStrategy(strategy string) []Record {
	return l.collect(l.outgoing[strategy])
}

// ByOpponent returns all records where the given strategy appears as
// the opponent.
func (l *Ledger) ByOpponent(strategy string) []Record {
	return l.collect(l.incoming[strategy])
}

// ByStrategyOpening filters ByStrategy down to one opening.
func (l *Ledger) ByStrategyOpening(strategy, opening string) []Record {
	return l.collectOpening(l.outgoing[strategy], opening)
}

// ByOpponentOpening filters ByOpponent down to one opening.
func (l *Ledger) ByOpponentOpening(strategy, opening string) []Record {
	return l.collectOpening(l.incoming[strategy], opening)
}

// Matchup returns the single directional record for (strategy,
// opponent, opening), or ErrNoMatchup if none was recorded. The mirror
// record is deliberately not consulted.
func (l *Ledger) Matchup(strategy, opponent, opening string) (Record, error) {
	idx, ok := l.matchups[matchupKey{strategy, opponent, opening}]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s vs %s under %s", ErrNoMatchup, strategy, opponent, opening)
	}
	return l.records[idx], nil
}

func (l *Ledger) collect(indices []int) []Record {
	out := make([]Record, 0, len(indices))
	for _, i := range indices {
		out = append(out, l.records[i])
	}
	return out
}

func (l *Ledger) collectOpening(indices []int, opening string) []Record {
	var out []Record
	for _, i := range indices {
		if l.records[i].Opening == opening {
			out = append(out, l.records[i])
		}
	}
	return out
}
