package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/tui/components"
	"github.com/iamagencia/crmdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderActivityTab(cw int) string {
	t := theme.Active

	history := metrics.RecentActivities(a.activities, len(a.activities))

	var body string
	if len(history) == 0 {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render("No activity yet")
	} else {
		w := components.CardInnerWidth(cw)

		dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		typeStyle := lipgloss.NewStyle().Foreground(t.Cyan)
		clientStyle := lipgloss.NewStyle().Foreground(t.Accent)
		descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		nextStyle := lipgloss.NewStyle().Foreground(t.Yellow)

		descW := (w - 44) / 2
		if descW < 16 {
			descW = 16
		}

		var b strings.Builder
		for _, act := range history {
			next := ""
			if act.NextAction != "" {
				next = nextStyle.Render("→ " + truncStr(act.NextAction, descW))
			}
			fmt.Fprintf(&b, "%s %s %s %s %s %s\n",
				dateStyle.Render(cli.FormatDate(act.Date)),
				typeStyle.Render(fmt.Sprintf("%-10s", truncStr(string(act.Type), 10))),
				clientStyle.Render(fmt.Sprintf("%-18s", truncStr(act.Client, 18))),
				descStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(act.Description, descW))),
				components.StatusBadge(string(act.Status)),
				next)
		}
		body = strings.TrimRight(b.String(), "\n")
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	trendCard := components.ContentCard("Daily Trend (14d)",
		a.renderActivityTrend(), cw)
	card := components.ContentCard(fmt.Sprintf("Activity History · %d entries", len(history)), body, cw)

	return lipgloss.JoinVertical(lipgloss.Left, trendCard, card,
		hintStyle.Render(" [n] log a new activity"))
}

// renderActivityTrend charts how many interactions were logged per
// day over the two weeks ending at the newest activity.
func (a App) renderActivityTrend() string {
	t := theme.Active

	if len(a.activities) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No activity yet")
	}

	var latest time.Time
	for _, act := range a.activities {
		if act.Date.After(latest) {
			latest = act.Date
		}
	}
	latest = latest.Truncate(24 * time.Hour)

	const days = 14
	counts := make([]float64, days)
	for _, act := range a.activities {
		d := int(latest.Sub(act.Date.Truncate(24*time.Hour)).Hours() / 24)
		if d >= 0 && d < days {
			counts[days-1-d]++
		}
	}

	return components.Sparkline(counts, t.Accent)
}
