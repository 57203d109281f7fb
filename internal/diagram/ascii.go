package diagram

import (
	"fmt"
	"strings"
)

// MemberDCR is one member's governing ratio for charting.
type MemberDCR struct {
	Name   string
	DCR    float64
	Passes bool
}

// DrawDCRChart renders a horizontal bar chart of governing ratios with
// the DCR = 1.0 acceptance line marked.
func DrawDCRChart(members []MemberDCR) string {
	var sb strings.Builder

	if len(members) == 0 {
		return ""
	}

	maxDCR := 1.0
	nameWidth := 6
	for _, m := range members {
		if m.DCR > maxDCR {
			maxDCR = m.DCR
		}
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
	}

	const barWidth = 40
	scale := float64(barWidth) / maxDCR
	limitCol := int(1.0 * scale)

	sb.WriteString("\n")
	sb.WriteString("  DEMAND/CAPACITY RATIOS\n")
	sb.WriteString("  ──────────────────────\n\n")

	for _, m := range members {
		barLen := int(m.DCR * scale)
		if barLen > barWidth {
			barLen = barWidth
		}

		bar := make([]rune, barWidth+1)
		for i := range bar {
			switch {
			case i < barLen:
				bar[i] = '█'
			case i == limitCol:
				bar[i] = '┊'
			default:
				bar[i] = ' '
			}
		}

		status := "✓"
		if !m.Passes {
			status = "✗"
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%s│ %.3f %s\n", nameWidth, m.Name, string(bar), m.DCR, status))
	}

	sb.WriteString(fmt.Sprintf("  %-*s  %s▲\n", nameWidth, "", strings.Repeat(" ", limitCol)))
	sb.WriteString(fmt.Sprintf("  %-*s  %sDCR = 1.0\n", nameWidth, "", strings.Repeat(" ", limitCol)))

	return sb.String()
}

// GroupBarData holds a wall group's capacity breakdown for charting.
type GroupBarData struct {
	SegmentNames []string
	SegmentVn    []float64 // kN
	Sum          float64   // kN
	Ceiling      float64   // kN
	Effective    float64   // kN
}

// DrawGroupCapacityBar renders the stacked segment strengths against
// the group material ceiling.
func DrawGroupCapacityBar(data GroupBarData) string {
	var sb strings.Builder

	maxV := data.Sum
	if data.Ceiling > maxV {
		maxV = data.Ceiling
	}
	if maxV <= 0 {
		return ""
	}

	const barWidth = 44
	scale := float64(barWidth) / maxV
	ceilingCol := int(data.Ceiling * scale)

	sb.WriteString("\n")
	sb.WriteString("  GROUP CAPACITY vs CEILING\n")
	sb.WriteString("  ─────────────────────────\n\n")

	// Stacked bar of segment strengths
	var filled int
	var bar strings.Builder
	glyphs := []rune{'█', '▓', '▒', '░'}
	for i, vn := range data.SegmentVn {
		segLen := int(vn * scale)
		if filled+segLen > barWidth {
			segLen = barWidth - filled
		}
		bar.WriteString(strings.Repeat(string(glyphs[i%len(glyphs)]), segLen))
		filled += segLen
	}
	bar.WriteString(strings.Repeat(" ", barWidth-filled))

	sb.WriteString(fmt.Sprintf("  ΣVn      │%s│ %.1f kN\n", bar.String(), data.Sum))
	sb.WriteString(fmt.Sprintf("  ceiling   %s▲ %.1f kN\n", strings.Repeat(" ", ceilingCol), data.Ceiling))
	sb.WriteString(fmt.Sprintf("\n  effective capacity = %.1f kN\n", data.Effective))

	for i, name := range data.SegmentNames {
		if i < len(data.SegmentVn) {
			sb.WriteString(fmt.Sprintf("  %s %s = %.1f kN\n", string(glyphs[i%len(glyphs)]), name, data.SegmentVn[i]))
		}
	}

	return sb.String()
}

// DrawSummaryBox creates a boxed summary for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
