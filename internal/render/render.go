// Package render draws distributions and gate sequences for the terminal.
package render

import (
	"fmt"
	"math"
	"strings"

	"qlct/internal/quantum"
)

// Bits formats basis index i as an n-bit string, qubit n-1 first.
func Bits(i, n int) string {
	return fmt.Sprintf("%0*b", n, i)
}

// Histogram draws one bar per basis state. The target row is highlighted;
// width is the bar length for probability 1 and defaults to 40 when ≤ 0.
func Histogram(probs []float64, target, width int) string {
	if width <= 0 {
		width = barMaxW
	}
	n := max(1, int(math.Round(math.Log2(float64(len(probs))))))

	var sb strings.Builder
	for i, p := range probs {
		cells := int(math.Round(p * float64(width)))
		bar := strings.Repeat("█", cells) + strings.Repeat("·", width-cells)
		label := fmt.Sprintf("|%s⟩", Bits(i, n))
		pct := fmt.Sprintf("%6.2f%%", 100*p)

		if i == target {
			fmt.Fprintf(&sb, "%s %s %s ◂\n", targetBarStyle.Render(label), targetBarStyle.Render(bar), targetBarStyle.Render(pct))
		} else {
			fmt.Fprintf(&sb, "%s %s %s\n", labelStyle.Render(label), barStyle.Render(bar), dimStyle.Render(pct))
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// GateList renders gates as numbered rows. current marks the row about to be
// applied (-1 for none); window limits output to that many rows around it
// (0 shows everything).
func GateList(gates []quantum.Gate, current, window int) string {
	start, end := 0, len(gates)
	if window > 0 && len(gates) > window {
		start = max(0, min(current-window/2, len(gates)-window))
		end = start + window
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  … %d earlier", start)))
		sb.WriteString("\n")
	}
	for i := start; i < end; i++ {
		row := gateRow(i, gates[i])
		switch {
		case i == current:
			sb.WriteString(activeGateStyle.Render("▸ " + row))
		case current >= 0 && i < current:
			sb.WriteString(dimStyle.Render("  " + row))
		default:
			sb.WriteString("  " + gateStyle.Render(row))
		}
		sb.WriteString("\n")
	}
	if end < len(gates) {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(gates)-end)))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func gateRow(i int, g quantum.Gate) string {
	kind := padRight(g.Kind().String(), gateKindW)
	idx := padRight(fmt.Sprintf("%d", i), gateIndexW)
	if ctrls := g.Controls(); len(ctrls) > 0 {
		parts := make([]string, len(ctrls))
		for j, c := range ctrls {
			parts[j] = fmt.Sprintf("q%d", c)
		}
		return fmt.Sprintf("%s%sq%d ← %s", idx, kind, g.Target(), strings.Join(parts, ","))
	}
	return fmt.Sprintf("%s%sq%d", idx, kind, g.Target())
}

// Summary renders "label: value" lines in order, values formatted with %v.
func Summary(title string, pairs ...any) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&sb, "\n%s %s",
			labelStyle.Render(fmt.Sprintf("%v:", pairs[i])),
			valueStyle.Render(formatValue(pairs[i+1])))
	}
	return sb.String()
}

// Panel wraps body in the bordered panel style.
func Panel(body string) string {
	return panelStyle.Render(body)
}

// Title renders a heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Dim renders secondary text.
func Dim(s string) string {
	return dimStyle.Render(s)
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.6f", f)
	}
	return fmt.Sprintf("%v", v)
}

// padRight pads s with spaces to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
