package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/san-kum/evoarena/internal/analyze"
	"github.com/san-kum/evoarena/internal/config"
	"github.com/san-kum/evoarena/internal/ledger"
)

func testReport(t *testing.T) *analyze.Report {
	t.Helper()
	l, err := ledger.New([]ledger.Record{
		{Strategy: "A", Opponent: "B", Opening: "Standard", Wins: 2, WinPercent: 40.0, HasWinPercent: true},
		{Strategy: "B", Opponent: "A", Opening: "Standard", Wins: 3, WinPercent: 60.0, HasWinPercent: true},
	})
	if err != nil {
		t.Fatalf("ledger.New failed: %v", err)
	}
	report, err := analyze.Run(context.Background(), l, config.DefaultConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("analyze.Run failed: %v", err)
	}
	return report
}

func TestInitCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, sub := range []string{"Heat Maps", "Replicator Dynamics"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			t.Errorf("missing output dir %q", sub)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := s.WriteHeatmap("0. Strategy Opening.svg", "<svg/>"); err != nil {
		t.Fatalf("WriteHeatmap failed: %v", err)
	}
	if err := s.WriteDynamicsChart("0. Standard RD.svg", "<svg/>"); err != nil {
		t.Fatalf("WriteDynamicsChart failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Heat Maps", "0. Strategy Opening.svg")); err != nil {
		t.Errorf("heatmap file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Replicator Dynamics", "0. Standard RD.svg")); err != nil {
		t.Errorf("dynamics chart missing: %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := s.ExportJSON(testReport(t)); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "results.json"))
	if err != nil {
		t.Fatalf("read results.json: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"ranked", "strategy_opening", "matchups", "payoffs", "trajectories"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("results.json missing %q", key)
		}
	}
}
