package render

import (
	"fmt"
	"strings"
)

var seriesPalette = []string{
	"#440154", "#46327e", "#365c8d", "#277f8e",
	"#1fa187", "#4ac16d", "#a0da39", "#fde725",
}

// LineChartSVG renders a multi-series population line chart: one
// polyline per strategy, share on the y axis in [0,1], generation on
// the x axis, with a legend. generations[g][s] is strategy s's share
// at generation g.
func LineChartSVG(strategies []string, generations [][]float64, title string) string {
	const (
		width  = 720
		height = 480
		left   = 60
		right  = 150
		top    = 50
		bottom = 40
		plotW  = width - left - right
		plotH  = height - top - bottom
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="28" font-family="sans-serif" font-size="16" font-weight="bold" text-anchor="middle">%s</text>
`, left+plotW/2, escape(title)))

	// Gridlines at 0, 0.25, 0.5, 0.75, 1.
	for k := 0; k <= 4; k++ {
		y := top + plotH - k*plotH/4
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#dddddd" stroke-dasharray="4 3"/>
`, left, y, left+plotW, y))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="10" text-anchor="end">%.2f</text>
`, left-6, y+4, float64(k)/4.0))
	}

	if len(generations) > 1 {
		for s := range strategies {
			color := seriesPalette[s%len(seriesPalette)]
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2.5" d="M`, color))
			for g := range generations {
				x := float64(left) + float64(g)/float64(len(generations)-1)*float64(plotW)
				share := generations[g][s]
				y := float64(top) + (1-share)*float64(plotH)
				if g == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
				}
			}
			sb.WriteString("\"/>\n")
		}
	}

	// Axes.
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333333"/>
<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333333"/>
`, left, top, left, top+plotH, left, top+plotH, left+plotW, top+plotH))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle">Generation</text>
`, left+plotW/2, height-10))
	sb.WriteString(fmt.Sprintf(`<text x="18" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle" transform="rotate(-90 18 %d)">Population Share</text>
`, top+plotH/2, top+plotH/2))

	// Legend.
	for s, name := range strategies {
		color := seriesPalette[s%len(seriesPalette)]
		y := top + s*18
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s"/>
`, left+plotW+14, y, color))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="11">%s</text>
`, left+plotW+30, y+10, escape(name)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
