package components

import (
	"fmt"
	"strings"

	"github.com/iamagencia/crmdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarRow is one entry of a horizontal amount chart.
type BarRow struct {
	Label  string
	Amount int64
	Detail string
	Color  lipgloss.Color
}

// AmountBars renders labeled horizontal bars scaled to the largest
// amount. Width bounds the whole rendered line.
func AmountBars(rows []BarRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	detailW := 0
	var maxAmount int64
	for _, r := range rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
		if len(r.Detail) > detailW {
			detailW = len(r.Detail)
		}
		if r.Amount > maxAmount {
			maxAmount = r.Amount
		}
	}
	if maxAmount == 0 {
		maxAmount = 1
	}

	barW := width - labelW - detailW - 4
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fill := int(r.Amount * int64(barW) / maxAmount)
		if fill < 1 && r.Amount > 0 {
			fill = 1
		}
		color := r.Color
		if color == "" {
			color = t.Accent
		}
		barStyle := lipgloss.NewStyle().Foreground(color)
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(strings.Repeat("█", fill)))
		b.WriteString(emptyStyle.Render(strings.Repeat("░", barW-fill)))
		b.WriteString("  ")
		b.WriteString(detailStyle.Render(fmt.Sprintf("%*s", detailW, r.Detail)))
	}
	return b.String()
}
