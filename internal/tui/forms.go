package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formValues holds the string-backed fields the huh inputs bind to.
type formValues struct {
	// New client
	name         string
	email        string
	phone        string
	city         string
	industry     string
	monthlyValue string

	// New quote
	client  string
	service string
	amount  string
	notes   string

	// New activity
	actType     string
	description string
	nextAction  string
}

func notEmpty(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func optionalNumber(v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func requiredNumber(v string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func (a App) openClientForm() (tea.Model, tea.Cmd) {
	a.formVals = formValues{city: a.cfg.General.DefaultCity}
	a.formKind = formClient

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&a.formVals.name).
				Validate(notEmpty("name")),
			huh.NewInput().
				Title("Email").
				Value(&a.formVals.email).
				Validate(notEmpty("email")),
			huh.NewInput().
				Title("Phone").
				Value(&a.formVals.phone),
			huh.NewInput().
				Title("City").
				Value(&a.formVals.city),
			huh.NewInput().
				Title("Industry").
				Value(&a.formVals.industry),
			huh.NewInput().
				Title("Monthly value (CLP)").
				Value(&a.formVals.monthlyValue).
				Validate(optionalNumber),
		).Title("New Client"),
	).WithWidth(a.width).WithHeight(a.height)

	return a, a.form.Init()
}

func (a App) openQuoteForm() (tea.Model, tea.Cmd) {
	a.formVals = formValues{}
	a.formKind = formQuote

	clientOpts := make([]huh.Option[string], 0, len(a.clients))
	for _, c := range a.clients {
		clientOpts = append(clientOpts, huh.NewOption(c.Name, c.Name))
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Client").
				Options(clientOpts...).
				Value(&a.formVals.client),
			huh.NewInput().
				Title("Service").
				Value(&a.formVals.service).
				Validate(notEmpty("service")),
			huh.NewInput().
				Title("Amount (CLP)").
				Value(&a.formVals.amount).
				Validate(requiredNumber),
			huh.NewInput().
				Title("Notes").
				Value(&a.formVals.notes),
		).Title("New Quote"),
	).WithWidth(a.width).WithHeight(a.height)

	return a, a.form.Init()
}

func (a App) openActivityForm() (tea.Model, tea.Cmd) {
	a.formVals = formValues{}
	a.formKind = formActivity

	clientOpts := make([]huh.Option[string], 0, len(a.clients))
	for _, c := range a.clients {
		clientOpts = append(clientOpts, huh.NewOption(c.Name, c.Name))
	}

	typeOpts := make([]huh.Option[string], 0, len(model.ActivityTypes))
	for _, t := range model.ActivityTypes {
		typeOpts = append(typeOpts, huh.NewOption(string(t), string(t)))
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Client").
				Options(clientOpts...).
				Value(&a.formVals.client),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOpts...).
				Value(&a.formVals.actType),
			huh.NewInput().
				Title("Description").
				Value(&a.formVals.description).
				Validate(notEmpty("description")),
			huh.NewInput().
				Title("Next action").
				Value(&a.formVals.nextAction),
		).Title("Log Activity"),
	).WithWidth(a.width).WithHeight(a.height)

	return a, a.form.Init()
}

// submitForm turns the completed form values into a store mutation
// and refreshes the derived figures.
func (a *App) submitForm(kind formKind) {
	if a.store == nil {
		a.notice = "store unavailable"
		return
	}
	v := a.formVals

	switch kind {
	case formClient:
		monthly, _ := strconv.ParseInt(strings.TrimSpace(v.monthlyValue), 10, 64)
		c, err := a.store.AddClient(model.Client{
			Name:         strings.TrimSpace(v.name),
			Email:        strings.TrimSpace(v.email),
			Phone:        strings.TrimSpace(v.phone),
			City:         strings.TrimSpace(v.city),
			Industry:     strings.TrimSpace(v.industry),
			Status:       model.ClientActive,
			MonthlyValue: monthly,
		})
		if err != nil {
			a.notice = "error: " + err.Error()
			return
		}
		_, _ = a.store.RecordActivity(c.Name, model.ActivityRegistration,
			"Cliente registrado en el sistema",
			store.ActivityOptions{NextAction: "Llamada de bienvenida"})
		a.notice = fmt.Sprintf("client %s created", c.ID)

	case formQuote:
		amount, _ := strconv.ParseInt(strings.TrimSpace(v.amount), 10, 64)
		q, err := a.store.AddQuote(model.Quote{
			Client:      v.client,
			Service:     strings.TrimSpace(v.service),
			Amount:      amount,
			Status:      model.QuoteSent,
			Probability: 50,
			Owner:       a.cfg.General.Owner,
			Notes:       strings.TrimSpace(v.notes),
		})
		if err != nil {
			a.notice = "error: " + err.Error()
			return
		}
		_, _ = a.store.RecordActivity(q.Client, model.ActivityProposal,
			fmt.Sprintf("Cotización enviada: %s - $%d", q.Service, q.Amount),
			store.ActivityOptions{NextAction: "Seguimiento en 3 días"})
		a.notice = fmt.Sprintf("quote %s created", q.ID)

	case formActivity:
		_, err := a.store.RecordActivity(v.client, model.ActivityType(v.actType),
			strings.TrimSpace(v.description),
			store.ActivityOptions{NextAction: strings.TrimSpace(v.nextAction)})
		if err != nil {
			a.notice = "error: " + err.Error()
			return
		}
		a.notice = "activity logged"
	}

	a.recompute()
}
