package ledger

import (
	"errors"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{Strategy: "ShortestPath", Opponent: "Random", Opening: "Standard Opening", Wins: 8, WinPercent: 80.0, HasWinPercent: true},
		{Strategy: "Random", Opponent: "ShortestPath", Opening: "Standard Opening", Wins: 2, WinPercent: 20.0, HasWinPercent: true},
		{Strategy: "ShortestPath", Opponent: "Defensive", Opening: "Standard Opening", Wins: 6, WinPercent: 60.0, HasWinPercent: true},
		{Strategy: "Defensive", Opponent: "ShortestPath", Opening: "Standard Opening", Wins: 4, WinPercent: 40.0, HasWinPercent: true},
		{Strategy: "ShortestPath", Opponent: "Random", Opening: "Sidewall Opening", Wins: 7, WinPercent: 70.0, HasWinPercent: true},
		{Strategy: "Random", Opponent: "ShortestPath", Opening: "Sidewall Opening", Wins: 3, WinPercent: 30.0, HasWinPercent: true},
	}
}

func TestOrdering(t *testing.T) {
	l, err := New(testRecords())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	wantStrategies := []string{"ShortestPath", "Random", "Defensive"}
	got := l.Strategies()
	if len(got) != len(wantStrategies) {
		t.Fatalf("expected %d strategies, got %d", len(wantStrategies), len(got))
	}
	for i, s := range wantStrategies {
		if got[i] != s {
			t.Errorf("strategy %d: expected %s, got %s", i, s, got[i])
		}
	}

	wantOpenings := []string{"Standard Opening", "Sidewall Opening"}
	gotO := l.Openings()
	if len(gotO) != len(wantOpenings) {
		t.Fatalf("expected %d openings, got %d", len(wantOpenings), len(gotO))
	}
	for i, o := range wantOpenings {
		if gotO[i] != o {
			t.Errorf("opening %d: expected %s, got %s", i, o, gotO[i])
		}
	}
}

func TestOpponentOnlyStrategyIndexed(t *testing.T) {
	l, err := New([]Record{
		{Strategy: "A", Opponent: "B", Opening: "No Opening", Wins: 1},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(l.Strategies()) != 2 {
		t.Errorf("expected opponent-only strategy to be indexed, got %v", l.Strategies())
	}
}

func TestLookups(t *testing.T) {
	l, err := New(testRecords())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if n := l.Len(); n != 6 {
		t.Errorf("Len: expected 6 records, got %d", n)
	}
	if n := len(l.ByStrategy("ShortestPath")); n != 3 {
		t.Errorf("ByStrategy: expected 3 records, got %d", n)
	}
	if n := len(l.ByOpponent("ShortestPath")); n != 3 {
		t.Errorf("ByOpponent: expected 3 records, got %d", n)
	}
	if n := len(l.ByStrategyOpening("ShortestPath", "Standard Opening")); n != 2 {
		t.Errorf("ByStrategyOpening: expected 2 records, got %d", n)
	}
	if n := len(l.ByOpponentOpening("Defensive", "Sidewall Opening")); n != 0 {
		t.Errorf("ByOpponentOpening: expected 0 records, got %d", n)
	}
}

func TestMatchup(t *testing.T) {
	l, err := New(testRecords())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r, err := l.Matchup("ShortestPath", "Defensive", "Standard Opening")
	if err != nil {
		t.Fatalf("Matchup failed: %v", err)
	}
	if r.WinPercent != 60.0 {
		t.Errorf("expected win percent 60.0, got %f", r.WinPercent)
	}

	// Mirror direction is a distinct record.
	r, err = l.Matchup("Defensive", "ShortestPath", "Standard Opening")
	if err != nil {
		t.Fatalf("mirror Matchup failed: %v", err)
	}
	if r.WinPercent != 40.0 {
		t.Errorf("expected win percent 40.0, got %f", r.WinPercent)
	}

	_, err = l.Matchup("Defensive", "Random", "Standard Opening")
	if !errors.Is(err, ErrNoMatchup) {
		t.Errorf("expected ErrNoMatchup, got %v", err)
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"empty strategy", Record{Opponent: "B", Opening: "No Opening", Wins: 1}},
		{"empty opponent", Record{Strategy: "A", Opening: "No Opening", Wins: 1}},
		{"empty opening", Record{Strategy: "A", Opponent: "B", Wins: 1}},
		{"negative wins", Record{Strategy: "A", Opponent: "B", Opening: "No Opening", Wins: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Record{tt.rec})
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}
