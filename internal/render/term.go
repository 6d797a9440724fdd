package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/evoarena/internal/matrix"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Terminal color ramp, low to high win rate.
var rampStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("58")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("64")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("37")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("31")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("25")),
}

// HeatmapTerm renders a matrix as colored terminal cells.
func HeatmapTerm(m *matrix.Matrix, title string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n\n")

	labelWidth := 0
	for _, r := range m.Rows {
		if len(r) > labelWidth {
			labelWidth = len(r)
		}
	}

	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	for j := range m.Cols {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%7d", j)))
	}
	sb.WriteString("\n")

	for i, row := range m.Cells {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%*s", labelWidth, m.Rows[i])))
		sb.WriteString(" ")
		for _, v := range row {
			style := rampStyles[rampIndex(v/100.0)]
			sb.WriteString(style.Render(fmt.Sprintf(" %5.1f ", v)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for j, c := range m.Cols {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%d: %s", j, c)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// TrajectoryTerm plots each strategy's population share over
// generations as an ascii graph.
func TrajectoryTerm(strategies []string, generations [][]float64, title string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n\n")

	for s, name := range strategies {
		data := make([]float64, len(generations))
		for g := range generations {
			data[g] = generations[g][s]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s population share", name)),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func rampIndex(t float64) int {
	idx := int(t * float64(len(rampStyles)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rampStyles) {
		idx = len(rampStyles) - 1
	}
	return idx
}
