// Package ingest reads tournament result tables into ledger records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/evoarena/internal/ledger"
)

// Expected header columns, case-sensitive.
const (
	colStrategy   = "Strategy"
	colOpponent   = "Opponent"
	colOpening    = "Opening"
	colWins       = "Wins"
	colWinPercent = "Win %"
)

// ReadFile loads a CSV results table from disk.
func ReadFile(path string) ([]ledger.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses a results table with header
// Strategy,Opponent,Opening,Wins,Win %. One row per directional
// matchup-under-opening record. An empty Win % cell yields a record
// with HasWinPercent false; any other parse failure is a malformed
// record and aborts the read.
func Read(r io.Reader) ([]ledger.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colStrategy, colOpponent, colOpening, colWins} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ledger.ErrMalformedRecord, required)
		}
	}
	pctIdx, hasPctCol := cols[colWinPercent]

	var records []ledger.Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		wins, err := strconv.Atoi(row[cols[colWins]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad wins %q", ledger.ErrMalformedRecord, line, row[cols[colWins]])
		}

		rec := ledger.Record{
			Strategy: row[cols[colStrategy]],
			Opponent: row[cols[colOpponent]],
			Opening:  row[cols[colOpening]],
			Wins:     wins,
		}

		if hasPctCol && pctIdx < len(row) && row[pctIdx] != "" {
			pct, err := strconv.ParseFloat(row[pctIdx], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad win percent %q", ledger.ErrMalformedRecord, line, row[pctIdx])
			}
			rec.WinPercent = pct
			rec.HasWinPercent = true
		}

		records = append(records, rec)
	}

	return records, nil
}
