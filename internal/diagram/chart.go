package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DrawCombinationSeries plots the combined DCR across a member's load
// combinations as a terminal line chart.
func DrawCombinationSeries(memberName string, names []string, ratios []float64) string {
	if len(ratios) < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  DCR ACROSS COMBINATIONS - %s\n", memberName))
	sb.WriteString("  ───────────────────────────────────────\n\n")

	graph := asciigraph.Plot(ratios,
		asciigraph.Height(10),
		asciigraph.Width(2*len(ratios)+10),
		asciigraph.Caption("combination index →"),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")

	for i, name := range names {
		if i < len(ratios) {
			sb.WriteString(fmt.Sprintf("  [%d] %s: %.3f\n", i+1, name, ratios[i]))
		}
	}

	return sb.String()
}

// DrawAlphaCProfile plots the wall concrete coefficient αc against the
// hw/lw ratio, marking the member's position on the curve.
func DrawAlphaCProfile(hwOverLw float64, alphaAt func(float64) float64) string {
	const steps = 40
	data := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		ratio := 3.0 * float64(i) / steps
		data[i] = alphaAt(ratio)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  αc vs hw/lw\n")
	sb.WriteString("  ───────────\n\n")
	sb.WriteString(asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(50),
		asciigraph.Caption("hw/lw from 0 to 3"),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("\n  member hw/lw = %.2f → αc = %.3f\n", hwOverLw, alphaAt(hwOverLw)))

	return sb.String()
}
