package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/evoarena/internal/analyze"
	"github.com/san-kum/evoarena/internal/config"
	"github.com/san-kum/evoarena/internal/ingest"
	"github.com/san-kum/evoarena/internal/ledger"
	"github.com/san-kum/evoarena/internal/matrix"
	"github.com/san-kum/evoarena/internal/render"
	"github.com/san-kum/evoarena/internal/score"
	"github.com/san-kum/evoarena/internal/store"
)

var (
	outDir      string
	configFile  string
	integrator  string
	generations int
	horizon     float64
	substeps    int
	adaptive    bool
	tolerance   float64
	noDynamics  bool
	opening     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "evoarena",
		Short: "tournament analytics and evolutionary dynamics",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [results.csv]",
		Short: "run the full analysis and write heatmaps and dynamics charts",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	analyzeCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")
	analyzeCmd.Flags().Float64Var(&horizon, "horizon", config.DefaultHorizon, "simulated time horizon")
	analyzeCmd.Flags().IntVar(&substeps, "substeps", config.DefaultSubsteps, "integration substeps per generation")
	analyzeCmd.Flags().BoolVar(&adaptive, "adaptive", false, "adaptive step sizing (rk45 only)")
	analyzeCmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "adaptive error tolerance")
	analyzeCmd.Flags().BoolVar(&noDynamics, "no-dynamics", false, "disable the replicator dynamics stage")

	scoresCmd := &cobra.Command{
		Use:   "scores [results.csv]",
		Short: "print overall strategy performance",
		Args:  cobra.ExactArgs(1),
		RunE:  runScores,
	}

	heatmapCmd := &cobra.Command{
		Use:   "heatmap [results.csv]",
		Short: "print a win-rate heatmap",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeatmap,
	}
	heatmapCmd.Flags().StringVar(&opening, "opening", "", "matchup heatmap for one opening (default: strategy vs opening)")

	dynamicsCmd := &cobra.Command{
		Use:   "dynamics [results.csv]",
		Short: "plot replicator dynamics in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runDynamics,
	}
	dynamicsCmd.Flags().StringVar(&opening, "opening", "", "restrict to one opening")
	dynamicsCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	dynamicsCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")
	dynamicsCmd.Flags().Float64Var(&horizon, "horizon", config.DefaultHorizon, "simulated time horizon")
	dynamicsCmd.Flags().BoolVar(&adaptive, "adaptive", false, "adaptive step sizing (rk45 only)")
	dynamicsCmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "adaptive error tolerance")

	openingsCmd := &cobra.Command{
		Use:   "openings [results.csv]",
		Short: "list openings and strategies",
		Args:  cobra.ExactArgs(1),
		RunE:  runOpenings,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [results.csv]",
		Short: "browse matchup heatmaps interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrowse,
	}

	rootCmd.AddCommand(analyzeCmd, scoresCmd, heatmapCmd, dynamicsCmd, openingsCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadLedger(path string) (*ledger.Ledger, error) {
	records, err := ingest.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ledger.New(records)
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config values.
	if cmd.Flags().Changed("integrator") || cfg.Integrator == "" {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("generations") {
		cfg.Dynamics.Generations = generations
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Dynamics.Horizon = horizon
	}
	if cmd.Flags().Changed("substeps") {
		cfg.Dynamics.Substeps = substeps
	}
	if cmd.Flags().Changed("adaptive") {
		cfg.Dynamics.Adaptive = adaptive
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Dynamics.Tolerance = tolerance
	}
	if noDynamics {
		cfg.Dynamics.Enabled = false
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	l, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("found %d records across %d strategies and %d openings\n",
		l.Len(), len(l.Strategies()), len(l.Openings()))

	report, err := analyze.Run(context.Background(), l, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println("\noverall strategy performance:")
	for _, line := range score.ReportLines(report.Ranked) {
		fmt.Println(line)
	}

	st := store.New(outDir)
	if err := st.Init(); err != nil {
		return err
	}

	combined := render.HeatmapSVG(report.StrategyOpening,
		"Win Percentages by Strategy and Opening", "Openings", "Strategies")
	if err := st.WriteHeatmap(render.CombinedHeatmapName(), combined); err != nil {
		return err
	}

	for k, o := range l.Openings() {
		svg := render.HeatmapSVG(report.Matchups[k],
			fmt.Sprintf("Win Percentages for %s", o), "Opponent Strategy", "Strategy")
		if err := st.WriteHeatmap(render.OpeningHeatmapName(k, o), svg); err != nil {
			return err
		}
	}

	for k, o := range l.Openings() {
		traj := trajectoryFor(report, o)
		if traj == nil {
			continue
		}
		svg := render.LineChartSVG(traj.Strategies, traj.Generations,
			fmt.Sprintf("Replicator Dynamics for %s", o))
		if err := st.WriteDynamicsChart(render.DynamicsChartName(k, o), svg); err != nil {
			return err
		}
	}

	if err := st.ExportJSON(report); err != nil {
		return err
	}

	fmt.Printf("\nwrote results to %s\n", outDir)
	return nil
}

func trajectoryFor(report *analyze.Report, opening string) *analyze.Trajectory {
	for _, traj := range report.Trajectories {
		if traj.Opening == opening {
			return traj
		}
	}
	return nil
}

func runScores(cmd *cobra.Command, args []string) error {
	l, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	entries := score.Ranked(score.Overall(l))
	for _, line := range score.ReportLines(entries) {
		fmt.Println(line)
	}
	return nil
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	l, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	if opening == "" {
		m := matrix.StrategyOpening(l)
		fmt.Println(render.HeatmapTerm(m, "Win Percentages by Strategy and Opening"))
		return nil
	}

	found := false
	for _, o := range l.Openings() {
		if o == opening {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown opening: %s", opening)
	}

	m := matrix.Matchup(l, opening)
	fmt.Println(render.HeatmapTerm(m, fmt.Sprintf("Win Percentages for %s", opening)))
	return nil
}

func runDynamics(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Dynamics.Enabled = true

	l, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	report, err := analyze.Run(context.Background(), l, cfg, logger)
	if err != nil {
		return err
	}

	for _, traj := range report.Trajectories {
		if opening != "" && traj.Opening != opening {
			continue
		}
		fmt.Println(render.TrajectoryTerm(traj.Strategies, traj.Generations,
			fmt.Sprintf("Replicator Dynamics for %s", traj.Opening)))
	}
	return nil
}

func runOpenings(cmd *cobra.Command, args []string) error {
	l, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OPENING\tRECORDS")
	for _, o := range l.Openings() {
		count := 0
		for _, s := range l.Strategies() {
			count += len(l.ByStrategyOpening(s, o))
		}
		fmt.Fprintf(w, "%s\t%d\n", o, count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nstrategies: %d\n", len(l.Strategies()))
	for _, s := range l.Strategies() {
		fmt.Printf("  %s\n", s)
	}
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	l, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	return render.RunBrowser(l.Openings(), matrix.Matchups(l))
}
