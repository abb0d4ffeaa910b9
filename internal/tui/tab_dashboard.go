package tui

import (
	"fmt"
	"strings"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/tui/components"
	"github.com/iamagencia/crmdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active

	// Headline metrics
	cards := []struct{ Label, Value, Detail string }{
		{"ACTIVE CLIENTS", fmt.Sprintf("%d", a.stats.ActiveClients), "of " + fmt.Sprintf("%d total", len(a.clients))},
		{"MONTHLY INCOME", cli.FormatMoney(a.stats.MonthlyIncome), "recurring"},
		{"PIPELINE", cli.FormatMoney(a.stats.PipelineValue), fmt.Sprintf("%d open quotes", a.stats.OpenQuotes)},
		{"CONVERSION", cli.FormatPercent(a.stats.ConversionRate), fmt.Sprintf("%d projects active", a.stats.ActiveProjects)},
	}
	topRow := components.MetricCardRow(cards, cw)

	// Pipeline by status + upcoming deadlines, side by side
	widths := components.LayoutRow(cw, 2)
	leftW := widths[0]
	rightW := widths[1]

	barRows := make([]components.BarRow, 0, len(a.pipeline))
	for _, st := range a.pipeline {
		color := t.Yellow
		switch st.Status {
		case model.QuoteApproved:
			color = t.Green
		case model.QuoteRejected:
			color = t.Red
		}
		barRows = append(barRows, components.BarRow{
			Label:  string(st.Status),
			Amount: st.Amount,
			Detail: fmt.Sprintf("%d", st.Count),
			Color:  color,
		})
	}
	pipelineCard := components.ContentCard("Pipeline by Status",
		components.AmountBars(barRows, components.CardInnerWidth(leftW)), leftW)

	deadlineCard := components.ContentCard("Upcoming Deadlines",
		a.renderDeadlines(components.CardInnerWidth(rightW)), rightW)

	midRow := components.CardRow([]string{pipelineCard, deadlineCard})

	// Recent activity feed
	activityCard := components.ContentCard("Recent Activity",
		a.renderRecentActivity(components.CardInnerWidth(cw)), cw)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, midRow, activityCard)
}

// renderDeadlines merges quote expiries and project deliveries into
// one urgency-sorted list.
func (a App) renderDeadlines(w int) string {
	t := theme.Active

	merged := make([]metrics.Deadline, 0, len(a.expiries)+len(a.deliveries))
	merged = append(merged, a.expiries...)
	merged = append(merged, a.deliveries...)
	for i := 1; i < len(merged); i++ {
		for j := i; j > 0 && merged[j].Days < merged[j-1].Days; j-- {
			merged[j], merged[j-1] = merged[j-1], merged[j]
		}
	}

	if len(merged) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No dated deadlines")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	clientStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	max := 6
	if len(merged) < max {
		max = len(merged)
	}
	for i := 0; i < max; i++ {
		d := merged[i]
		days := lipgloss.NewStyle().Foreground(components.UrgencyColor(d.Days)).Bold(true).
			Render(fmt.Sprintf("%-12s", cli.FormatDays(d.Days)))
		label := truncStr(d.Label, w-30)
		fmt.Fprintf(&b, "%s %s %s\n",
			days,
			labelStyle.Render(fmt.Sprintf("%-*s", w-30, label)),
			clientStyle.Render(truncStr(d.Client, 16)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderRecentActivity(w int) string {
	t := theme.Active

	if len(a.recent) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No activity yet")
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	typeStyle := lipgloss.NewStyle().Foreground(t.Cyan)
	clientStyle := lipgloss.NewStyle().Foreground(t.Accent)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, act := range a.recent {
		desc := truncStr(act.Description, w-44)
		fmt.Fprintf(&b, "%s %s %s %s\n",
			dateStyle.Render(cli.FormatDate(act.Date)),
			typeStyle.Render(fmt.Sprintf("%-10s", truncStr(string(act.Type), 10))),
			clientStyle.Render(fmt.Sprintf("%-18s", truncStr(act.Client, 18))),
			descStyle.Render(desc))
	}
	return strings.TrimRight(b.String(), "\n")
}
