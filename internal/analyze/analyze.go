// Package analyze runs the batch tournament analysis pipeline:
// aggregate scores, win-rate matrices, and per-opening replicator
// dynamics.
package analyze

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/evoarena/internal/config"
	"github.com/san-kum/evoarena/internal/dynamics"
	"github.com/san-kum/evoarena/internal/game"
	"github.com/san-kum/evoarena/internal/ledger"
	"github.com/san-kum/evoarena/internal/matrix"
	"github.com/san-kum/evoarena/internal/score"
)

// Trajectory is one opening's replicator-dynamics result: one
// row-population share vector per generation, in generation order.
type Trajectory struct {
	Opening     string      `json:"opening"`
	Strategies  []string    `json:"strategies"`
	Generations [][]float64 `json:"generations"`
}

// Skipped records an opening whose dynamics run failed. Skips are
// per-opening: they never abort the batch.
type Skipped struct {
	Opening string
	Err     error
}

// Report is everything one batch pass computes.
type Report struct {
	Scores          []score.Entry
	Ranked          []score.Entry
	StrategyOpening *matrix.Matrix
	Matchups        []*matrix.Matrix
	Payoffs         []*game.Payoff
	Trajectories    []*Trajectory
	Skipped         []Skipped
	DynamicsRan     bool
}

// Run executes the full pipeline over an immutable ledger. Scoring and
// matrix building always run; the dynamics stage runs only when the
// capability flag in cfg is set, and each opening's simulation failure
// is logged and skipped without touching the others.
func Run(ctx context.Context, l *ledger.Ledger, cfg *config.Config, logger *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := &Report{}

	report.Scores = score.Overall(l)
	report.Ranked = score.Ranked(report.Scores)
	report.StrategyOpening = matrix.StrategyOpening(l)
	report.Matchups = matrix.Matchups(l)

	if !cfg.Dynamics.Enabled {
		logger.Warn("replicator dynamics disabled, skipping",
			zap.String("op", "analyze.Run"))
		return report, nil
	}

	registry := NewRegistry()
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	if err := runDynamicsStage(ctx, l, integ, cfg, logger, report); err != nil {
		return report, err
	}
	return report, nil
}

// runDynamicsStage simulates every opening's replicator system. A
// failing opening is logged, recorded in report.Skipped, and the batch
// moves on; only context cancellation aborts the stage.
func runDynamicsStage(ctx context.Context, l *ledger.Ledger, integ dynamics.Integrator, cfg *config.Config, logger *zap.Logger, report *Report) error {
	sim := dynamics.New(integ)
	simCfg := dynamics.Config{
		Substeps:      cfg.Dynamics.Substeps,
		Adaptive:      cfg.Dynamics.Adaptive,
		Tolerance:     cfg.Dynamics.Tolerance,
		ValidateState: true,
	}
	timepoints := dynamics.Linspace(0, cfg.Dynamics.Horizon, cfg.Dynamics.Generations)

	for _, opening := range l.Openings() {
		payoff := game.NewPayoff(l, opening)
		report.Payoffs = append(report.Payoffs, payoff)

		traj, err := runOpening(ctx, sim, payoff, timepoints, simCfg)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("replicator dynamics failed, skipping opening",
				zap.String("op", "analyze.Run"),
				zap.String("opening", opening),
				zap.Error(err))
			report.Skipped = append(report.Skipped, Skipped{Opening: opening, Err: err})
			continue
		}
		report.Trajectories = append(report.Trajectories, traj)
	}

	report.DynamicsRan = true
	return nil
}

func runOpening(ctx context.Context, sim *dynamics.Simulator, payoff *game.Payoff, timepoints []float64, cfg dynamics.Config) (*Trajectory, error) {
	rep := game.NewReplicator(payoff)

	result, err := sim.Sample(ctx, rep, rep.UniformState(), timepoints, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", payoff.Opening, err)
	}

	traj := &Trajectory{
		Opening:     payoff.Opening,
		Strategies:  payoff.Strategies,
		Generations: make([][]float64, 0, len(result.States)),
	}
	for _, state := range result.States {
		traj.Generations = append(traj.Generations, rep.RowShares(state))
	}
	return traj, nil
}
