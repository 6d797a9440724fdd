package ledger

import "errors"

// Domain errors for ledger construction and lookups.
var (
	// ErrMalformedRecord indicates a record with a missing required
	// field or a negative win count. The ledger is foundational, so
	// this aborts the run.
	ErrMalformedRecord = errors.New("ledger: malformed match record")

	// ErrNoMatchup indicates no directional record exists for a
	// (strategy, opponent, opening) triple.
	ErrNoMatchup = errors.New("ledger: no matchup record")
)
