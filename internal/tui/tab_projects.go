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

func (a App) renderProjectsTab(cw int) string {
	active := 0
	var totalValue int64
	for _, p := range a.projects {
		if p.Status == model.ProjectDevelopment {
			active++
		}
		totalValue += p.Value
	}

	cards := []struct{ Label, Value, Detail string }{
		{"PROJECTS", fmt.Sprintf("%d", len(a.projects)), fmt.Sprintf("%d in development", active)},
		{"TOTAL VALUE", cli.FormatMoney(totalValue), "all projects"},
		{"DELIVERIES", fmt.Sprintf("%d", len(a.deliveries)), "with a due date"},
	}
	topRow := components.MetricCardRow(cards, cw)

	progressCard := components.ContentCard("Progress",
		a.renderProjectProgress(components.CardInnerWidth(cw)), cw)

	deliveryCard := components.ContentCard("Delivery Schedule",
		a.renderDeliveries(components.CardInnerWidth(cw)), cw)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, progressCard, deliveryCard)
}

func (a App) renderProjectProgress(w int) string {
	t := theme.Active

	if len(a.projects) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No projects yet")
	}

	labelW := 28
	barW := w - labelW - 30
	if barW < 10 {
		barW = 10
	}

	hoursStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	effStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	var b strings.Builder
	for _, p := range a.projects {
		bar := components.ProjectBar(truncStr(p.Name, labelW-1), float64(p.Progress)/100, labelW, barW)
		eff := metrics.HoursEfficiency(p)
		fmt.Fprintf(&b, "%s %s %s\n", bar,
			hoursStyle.Render(fmt.Sprintf("%10s", cli.FormatHours(p.WorkedHours, p.EstimatedHours))),
			effStyle.Render(fmt.Sprintf("%5.0f%%", eff)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderDeliveries(w int) string {
	t := theme.Active

	if len(a.deliveries) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing pending delivery")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	clientStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, d := range a.deliveries {
		days := lipgloss.NewStyle().Foreground(components.UrgencyColor(d.Days)).Bold(true).
			Render(fmt.Sprintf("%-12s", cli.FormatDays(d.Days)))
		fmt.Fprintf(&b, "%s %s %s %s\n",
			days,
			labelStyle.Render(fmt.Sprintf("%-*s", w-44, truncStr(d.Label, w-44))),
			clientStyle.Render(fmt.Sprintf("%-18s", truncStr(d.Client, 18))),
			dateStyle.Render(cli.FormatDate(d.Date)))
	}
	return strings.TrimRight(b.String(), "\n")
}
