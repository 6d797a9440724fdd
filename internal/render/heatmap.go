// Package render produces SVG and terminal views of the analysis
// outputs: annotated heatmaps for win-rate matrices and line charts
// for population trajectories.
package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/evoarena/internal/matrix"
)

const (
	cellW       = 64
	cellH       = 30
	marginLeft  = 170
	marginTop   = 50
	marginRight = 20
	labelPad    = 8
)

// HeatmapSVG renders an annotated heatmap of a labeled matrix. Cells
// are colored on a yellow-to-blue ramp over [0, 100], each annotated
// with its value to one decimal place.
func HeatmapSVG(m *matrix.Matrix, title, xLabel, yLabel string) string {
	width := marginLeft + len(m.Cols)*cellW + marginRight
	height := marginTop + len(m.Rows)*cellH + 70

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="28" font-family="sans-serif" font-size="16" font-weight="bold" text-anchor="middle">%s</text>
`, width/2, escape(title)))

	for i, row := range m.Cells {
		y := marginTop + i*cellH
		for j, v := range row {
			x := marginLeft + j*cellW
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#ffffff" stroke-width="1"/>
`, x, y, cellW, cellH, rampColor(v/100.0)))
			sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="10" text-anchor="middle" fill="%s">%.1f</text>
`, x+cellW/2, y+cellH/2+4, annotationColor(v/100.0), v))
		}

		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="11" text-anchor="end">%s</text>
`, marginLeft-labelPad, y+cellH/2+4, escape(m.Rows[i])))
	}

	colY := marginTop + len(m.Rows)*cellH + 14
	for j, label := range m.Cols {
		x := marginLeft + j*cellW + cellW/2
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="10" text-anchor="middle">%s</text>
`, x, colY, escape(shorten(label, 11))))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle">%s</text>
`, marginLeft+(len(m.Cols)*cellW)/2, colY+28, escape(xLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="16" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle" transform="rotate(-90 16 %d)">%s</text>
`, marginTop+(len(m.Rows)*cellH)/2, marginTop+(len(m.Rows)*cellH)/2, escape(yLabel)))

	sb.WriteString("</svg>\n")
	return sb.String()
}

// rampColor maps t in [0,1] onto a light-yellow to deep-blue ramp.
func rampColor(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	// #ffffd9 -> #41b6c4 -> #225ea8
	var r0, g0, b0, r1, g1, b1 int
	if t < 0.5 {
		t = t * 2
		r0, g0, b0 = 0xff, 0xff, 0xd9
		r1, g1, b1 = 0x41, 0xb6, 0xc4
	} else {
		t = (t - 0.5) * 2
		r0, g0, b0 = 0x41, 0xb6, 0xc4
		r1, g1, b1 = 0x22, 0x5e, 0xa8
	}
	r := r0 + int(t*float64(r1-r0))
	g := g0 + int(t*float64(g1-g0))
	b := b0 + int(t*float64(b1-b0))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func annotationColor(t float64) string {
	if t > 0.55 {
		return "#ffffff"
	}
	return "#333333"
}

func shorten(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
