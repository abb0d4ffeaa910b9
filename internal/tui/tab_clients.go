package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/export"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/store"
	"github.com/iamagencia/crmdash/internal/tui/components"
	"github.com/iamagencia/crmdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type clientsState struct {
	cursor    int
	filterIdx int // index into clientFilters
}

// clientFilters cycles with 'f'. Empty string means no filter.
var clientFilters = []model.ClientStatus{"", model.ClientActive, model.ClientProspect, model.ClientInactive}

func (a App) visibleClients() []model.Client {
	filter := clientFilters[a.clientsState.filterIdx%len(clientFilters)]
	if filter == "" {
		return a.clients
	}
	out := make([]model.Client, 0, len(a.clients))
	for _, c := range a.clients {
		if c.Status == filter {
			out = append(out, c)
		}
	}
	return out
}

func (a App) updateClientsKeys(key string) (bool, tea.Model, tea.Cmd) {
	visible := a.visibleClients()

	switch key {
	case "j", "down":
		if a.clientsState.cursor < len(visible)-1 {
			a.clientsState.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.clientsState.cursor > 0 {
			a.clientsState.cursor--
		}
		return true, a, nil
	case "f":
		a.clientsState.filterIdx = (a.clientsState.filterIdx + 1) % len(clientFilters)
		a.clientsState.cursor = 0
		return true, a, nil
	case "n":
		next, cmd := a.openClientForm()
		return true, next, cmd
	case "l":
		if len(visible) == 0 {
			return true, a, nil
		}
		c := visible[a.clientsState.cursor]
		_, err := a.store.RecordActivity(c.Name, model.ActivityCall,
			"Llamada de seguimiento", store.ActivityOptions{})
		if err != nil {
			a.notice = "error: " + err.Error()
			return true, a, nil
		}
		a.recompute()
		a.notice = "call logged for " + c.Name
		return true, a, nil
	case "e":
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path, err := export.SaveClients(dir, a.clients)
		if err != nil {
			a.notice = "export failed: " + err.Error()
			return true, a, nil
		}
		a.notice = "exported " + path
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderClientsTab(cw, contentH int) string {
	visible := a.visibleClients()

	widths := components.LayoutRow(cw, 2)
	listW := widths[0]
	detailW := widths[1]

	filter := clientFilters[a.clientsState.filterIdx%len(clientFilters)]
	title := "Clients"
	if filter != "" {
		title = fmt.Sprintf("Clients · %s", filter)
	}

	topRow := components.MetricCardRow(a.clientMetricCards(), cw)

	listH := contentH - lipgloss.Height(topRow) - 12
	if listH < 3 {
		listH = 3
	}

	list := components.ContentCard(title,
		a.renderClientList(visible, components.CardInnerWidth(listW), listH), listW)

	var detail string
	if len(visible) == 0 {
		detail = components.ContentCard("Detail",
			lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("No clients match"), detailW)
	} else {
		detail = components.ContentCard("Detail",
			a.renderClientDetail(visible[a.clientsState.cursor], components.CardInnerWidth(detailW)), detailW)
	}

	midRow := components.CardRow([]string{list, detail})

	industryCard := components.ContentCard("By Industry",
		a.renderIndustryBars(components.CardInnerWidth(listW)), listW)
	topCard := components.ContentCard("Top Clients",
		a.renderTopClients(components.CardInnerWidth(detailW)), detailW)
	bottomRow := components.CardRow([]string{industryCard, topCard})

	return lipgloss.JoinVertical(lipgloss.Left, topRow, midRow, bottomRow)
}

func (a App) clientMetricCards() []struct{ Label, Value, Detail string } {
	var maxValue int64
	for _, c := range a.clients {
		if c.MonthlyValue > maxValue {
			maxValue = c.MonthlyValue
		}
	}
	perClient := int64(0)
	if a.stats.ActiveClients > 0 {
		perClient = a.stats.MonthlyIncome / int64(a.stats.ActiveClients)
	}

	return []struct{ Label, Value, Detail string }{
		{"CLIENTS", fmt.Sprintf("%d", len(a.clients)), fmt.Sprintf("%d active", a.stats.ActiveClients)},
		{"MONTHLY INCOME", cli.FormatMoney(a.stats.MonthlyIncome), "active clients"},
		{"AVG VALUE", cli.FormatMoney(perClient), "per active client"},
		{"TOP VALUE", cli.FormatMoney(maxValue), "largest account"},
	}
}

func (a App) renderIndustryBars(w int) string {
	counts := metrics.ClientsByIndustry(a.clients)
	if len(counts) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("No clients yet")
	}

	rows := make([]components.BarRow, 0, len(counts))
	for _, ic := range counts {
		rows = append(rows, components.BarRow{
			Label:  ic.Industry,
			Amount: int64(ic.Count),
			Detail: fmt.Sprintf("%d", ic.Count),
		})
	}
	return components.AmountBars(rows, w)
}

func (a App) renderTopClients(w int) string {
	top := metrics.TopClients(a.clients, 5)
	if len(top) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("No clients yet")
	}

	rows := make([]components.BarRow, 0, len(top))
	for _, c := range top {
		rows = append(rows, components.BarRow{
			Label:  c.Name,
			Amount: c.MonthlyValue,
			Detail: cli.FormatMoney(c.MonthlyValue),
			Color:  theme.Active.Green,
		})
	}
	return components.AmountBars(rows, w)
}

func (a App) renderClientList(visible []model.Client, w, maxRows int) string {
	t := theme.Active

	if len(visible) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No clients match the filter")
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Keep the cursor in view
	start := 0
	if a.clientsState.cursor >= maxRows {
		start = a.clientsState.cursor - maxRows + 1
	}

	var b strings.Builder
	for i := start; i < len(visible) && i < start+maxRows; i++ {
		c := visible[i]
		marker := "  "
		style := rowStyle
		if i == a.clientsState.cursor {
			marker = "▸ "
			style = selStyle
		}
		name := truncStr(c.Name, w-28)
		fmt.Fprintf(&b, "%s%s %s %s\n",
			style.Render(marker),
			idStyle.Render(c.ID),
			style.Render(fmt.Sprintf("%-*s", w-28, name)),
			components.StatusBadge(string(c.Status)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderClientDetail(c model.Client, w int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(truncStr(value, w-14))
	}

	lines := []string{
		nameStyle.Render(c.Name) + "  " + components.StatusBadge(string(c.Status)),
		"",
		row("Email", c.Email),
		row("Phone", c.Phone),
		row("City", c.City),
		row("Industry", c.Industry),
		labelStyle.Render("Monthly") + moneyStyle.Render(cli.FormatMoney(c.MonthlyValue)),
		row("Registered", cli.FormatDate(c.Registered)),
		row("Last contact", cli.FormatDate(c.LastContact)),
	}
	if c.Website != "" {
		lines = append(lines, row("Website", c.Website))
	}
	if c.Services != "" {
		lines = append(lines, row("Services", c.Services))
	}
	if c.Notes != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(t.TextMuted).Width(w).Render(c.Notes))
	}

	return strings.Join(lines, "\n")
}
