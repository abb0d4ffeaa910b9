package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/store"
	"github.com/iamagencia/crmdash/internal/tui/components"
	"github.com/iamagencia/crmdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type quotesState struct {
	cursor int
}

func (a App) updateQuotesKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.quotesState.cursor < len(a.quotes)-1 {
			a.quotesState.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.quotesState.cursor > 0 {
			a.quotesState.cursor--
		}
		return true, a, nil
	case "n":
		next, cmd := a.openQuoteForm()
		return true, next, cmd
	case "A":
		if len(a.quotes) == 0 {
			return true, a, nil
		}
		q := a.quotes[a.quotesState.cursor]
		err := a.store.ApproveQuote(q.ID)
		switch {
		case errors.Is(err, store.ErrQuoteNotOpen):
			a.notice = fmt.Sprintf("%s is %s, only open quotes can be approved", q.ID, q.Status)
		case err != nil:
			a.notice = "error: " + err.Error()
		default:
			a.recompute()
			a.notice = fmt.Sprintf("quote %s approved", q.ID)
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderQuotesTab(cw int) string {
	// Status totals
	cards := make([]struct{ Label, Value, Detail string }, 0, len(a.pipeline))
	for _, st := range a.pipeline {
		cards = append(cards, struct{ Label, Value, Detail string }{
			Label:  strings.ToUpper(string(st.Status)),
			Value:  cli.FormatMoney(st.Amount),
			Detail: fmt.Sprintf("%d quotes", st.Count),
		})
	}
	topRow := components.MetricCardRow(cards, cw)

	listCard := components.ContentCard("Quotes",
		a.renderQuoteList(components.CardInnerWidth(cw)), cw)

	widths := components.LayoutRow(cw, 2)
	expiryCard := components.ContentCard("Expiring Soon",
		a.renderExpiries(components.CardInnerWidth(widths[0])), widths[0])
	recoveryCard := components.ContentCard("Reconversion",
		a.renderRecovery(components.CardInnerWidth(widths[1])), widths[1])
	bottomRow := components.CardRow([]string{expiryCard, recoveryCard})

	return lipgloss.JoinVertical(lipgloss.Left, topRow, listCard, bottomRow)
}

func (a App) renderQuoteList(w int) string {
	t := theme.Active

	if len(a.quotes) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No quotes yet")
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Green)

	serviceW := w - 52
	if serviceW < 10 {
		serviceW = 10
	}

	var b strings.Builder
	for i, q := range a.quotes {
		marker := "  "
		style := rowStyle
		if i == a.quotesState.cursor {
			marker = "▸ "
			style = selStyle
		}
		fmt.Fprintf(&b, "%s%s %s %s %s %s\n",
			style.Render(marker),
			idStyle.Render(q.ID),
			style.Render(fmt.Sprintf("%-18s", truncStr(q.Client, 18))),
			style.Render(fmt.Sprintf("%-*s", serviceW, truncStr(q.Service, serviceW))),
			moneyStyle.Render(fmt.Sprintf("%12s", cli.FormatMoney(q.Amount))),
			components.StatusBadge(string(q.Status)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderExpiries(w int) string {
	t := theme.Active

	if len(a.expiries) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No open quotes with an expiry")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, d := range a.expiries {
		days := lipgloss.NewStyle().Foreground(components.UrgencyColor(d.Days)).Bold(true).
			Render(fmt.Sprintf("%-12s", cli.FormatDays(d.Days)))
		fmt.Fprintf(&b, "%s %s\n", days,
			labelStyle.Render(truncStr(d.Client+" · "+d.Label, w-14)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRecovery shows what the rejected book is still worth: the
// recoverable total parsed out of alternative-proposal text plus the
// recontact schedule with its reconversion priority.
func (a App) renderRecovery(w int) string {
	t := theme.Active

	rejected := 0
	for _, q := range a.quotes {
		if q.Status == model.QuoteRejected {
			rejected++
		}
	}
	if rejected == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No rejected quotes")
	}

	estimate := metrics.RecoveryEstimate(a.quotes)
	avg := metrics.AverageReconversion(a.quotes)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n\n",
		headStyle.Render("Recoverable:"),
		moneyStyle.Render(cli.FormatMoney(estimate)),
		headStyle.Render(fmt.Sprintf("avg score %.0f", avg)))

	for _, r := range a.recontacts {
		days := lipgloss.NewStyle().Foreground(components.UrgencyColor(r.Days)).Bold(true).
			Render(fmt.Sprintf("%-12s", cli.FormatDays(r.Days)))
		prio := lipgloss.NewStyle().Foreground(t.Yellow)
		if r.Priority == metrics.PriorityHigh {
			prio = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		}
		fmt.Fprintf(&b, "%s %s %s\n", days,
			prio.Render(fmt.Sprintf("%-5s", r.Priority)),
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(truncStr(r.Quote.Client, w-20)))
	}
	return strings.TrimRight(b.String(), "\n")
}
