package render

import "fmt"

// Deterministic output names: index 0 is the combined
// strategy×opening chart, per-opening heatmaps are 1-based, and
// replicator-dynamics charts are 0-based, matching the opening order.
func CombinedHeatmapName() string {
	return "0. Strategy Opening.svg"
}

func OpeningHeatmapName(k int, opening string) string {
	return fmt.Sprintf("%d. %s Heat Map.svg", k+1, opening)
}

func DynamicsChartName(k int, opening string) string {
	return fmt.Sprintf("%d. %s RD.svg", k, opening)
}
