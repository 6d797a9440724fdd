// Package store manages the analysis run's output tree: heatmap and
// dynamics chart files plus JSON exports of the computed results.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/san-kum/evoarena/internal/analyze"
	"github.com/san-kum/evoarena/internal/game"
	"github.com/san-kum/evoarena/internal/matrix"
	"github.com/san-kum/evoarena/internal/score"
)

const (
	heatMapsDir = "Heat Maps"
	dynamicsDir = "Replicator Dynamics"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the output directories.
func (s *Store) Init() error {
	for _, dir := range []string{heatMapsDir, dynamicsDir} {
		if err := os.MkdirAll(filepath.Join(s.baseDir, dir), 0755); err != nil {
			return err
		}
	}
	return nil
}

// WriteHeatmap writes one heatmap file under "Heat Maps".
func (s *Store) WriteHeatmap(name, svg string) error {
	return os.WriteFile(filepath.Join(s.baseDir, heatMapsDir, name), []byte(svg), 0644)
}

// WriteDynamicsChart writes one trajectory chart under
// "Replicator Dynamics".
func (s *Store) WriteDynamicsChart(name, svg string) error {
	return os.WriteFile(filepath.Join(s.baseDir, dynamicsDir, name), []byte(svg), 0644)
}

type exportData struct {
	Ranked          []score.Entry         `json:"ranked"`
	StrategyOpening *matrix.Matrix        `json:"strategy_opening"`
	Matchups        []*matrix.Matrix      `json:"matchups"`
	Payoffs         []*game.Payoff        `json:"payoffs,omitempty"`
	Trajectories    []*analyze.Trajectory `json:"trajectories,omitempty"`
	SkippedOpenings []string              `json:"skipped_openings,omitempty"`
}

// ExportJSON writes the full report as results.json under the output
// root.
func (s *Store) ExportJSON(report *analyze.Report) error {
	data := exportData{
		Ranked:          report.Ranked,
		StrategyOpening: report.StrategyOpening,
		Matchups:        report.Matchups,
		Payoffs:         report.Payoffs,
		Trajectories:    report.Trajectories,
	}
	for _, sk := range report.Skipped {
		data.SkippedOpenings = append(data.SkippedOpenings, sk.Opening)
	}

	file, err := os.Create(filepath.Join(s.baseDir, "results.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
