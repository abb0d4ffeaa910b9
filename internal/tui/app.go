// Package tui provides the interactive Bubble Tea dashboard for crmdash.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iamagencia/crmdash/internal/config"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/seed"
	"github.com/iamagencia/crmdash/internal/sheets"
	"github.com/iamagencia/crmdash/internal/store"
	"github.com/iamagencia/crmdash/internal/tui/components"
	"github.com/iamagencia/crmdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the record store is seeded and ready.
// Err is set when opening or seeding failed; Store may still be
// usable (partially seeded) in that case.
type DataLoadedMsg struct {
	Store     *store.Store
	FromSheet bool
	LoadTime  time.Duration
	Err       error
}

// formKind tells Update which record the active form creates.
type formKind int

const (
	formNone formKind = iota
	formClient
	formQuote
	formActivity
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config

	// Current collections, reloaded after every mutation
	clients    []model.Client
	quotes     []model.Quote
	projects   []model.Project
	activities []model.Activity

	// Derived figures
	stats      metrics.DashboardStats
	pipeline   []metrics.StatusTotal
	expiries   []metrics.Deadline
	deliveries []metrics.Deadline
	recontacts []metrics.Recontact
	recent     []model.Activity

	loaded    bool
	fromSheet bool
	loadTime  time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    string

	// Per-tab state
	clientsState clientsState
	quotesState  quotesState
	settings     settingsState

	// Create forms (huh)
	form     *huh.Form
	formKind formKind
	formVals formValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// The TUI can always start even if the config file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp() App {
	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		cfg:     cfg,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.cfg),
		a.spinner.Tick,
	)
}

// recompute re-derives every aggregate from the store. Called after
// load and after every mutation.
func (a *App) recompute() {
	a.clients, _ = a.store.Clients(store.ClientFilter{})
	a.quotes, _ = a.store.Quotes()
	a.projects, _ = a.store.Projects()
	a.activities, _ = a.store.Activities()

	now := time.Now()
	a.stats = metrics.Aggregate(a.clients, a.quotes, a.projects)
	a.pipeline = metrics.PipelineByStatus(a.quotes)
	a.expiries = metrics.QuoteExpiries(now, a.quotes)
	a.deliveries = metrics.ProjectDeliveries(now, a.projects)
	a.recontacts = metrics.RecontactSchedule(now, a.quotes)
	a.recent = metrics.RecentActivities(a.activities, 10)

	// Clamp cursors to the refreshed collections
	visible := a.visibleClients()
	if a.clientsState.cursor >= len(visible) {
		a.clientsState.cursor = len(visible) - 1
	}
	if a.clientsState.cursor < 0 {
		a.clientsState.cursor = 0
	}
	if a.quotesState.cursor >= len(a.quotes) {
		a.quotesState.cursor = len(a.quotes) - 1
	}
	if a.quotesState.cursor < 0 {
		a.quotesState.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// An active create form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Settings editing intercepts all keys (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.notice = ""

		// Per-tab keybindings
		switch a.activeTab {
		case tabClients:
			if handled, next, cmd := a.updateClientsKeys(key); handled {
				return next, cmd
			}
		case tabQuotes:
			if handled, next, cmd := a.updateQuotesKeys(key); handled {
				return next, cmd
			}
		case tabActivity:
			if key == "n" {
				return a.openActivityForm()
			}
		case tabSettings:
			if handled, next, cmd := a.updateSettingsKeys(key); handled {
				return next, cmd
			}
		}

		// Global quit
		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.fromSheet = msg.FromSheet
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			a.notice = "load failed: " + msg.Err.Error()
		}
		if msg.Store != nil {
			a.store = msg.Store
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages so cursors keep blinking
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		a.submitForm(kind)
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  crmdash needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ crmdash"))
	b.WriteString(subtitleStyle.Render(" · IAM Agencia CRM"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading client data..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d c Q p a s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"n", "New record (clients, quotes, activity)"},
		{"l", "Log a call for the selected client"},
		{"f", "Cycle client status filter"},
		{"e", "Export clients to CSV"},
		{"A", "Approve the selected quote"},
		{"Enter", "Edit setting / confirm"},
		{"Esc", "Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + data-source pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	source := "local data"
	if a.fromSheet {
		source = "sheet data"
	}
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillStyle.Render(" ") + accentStyle.Render(source) +
		pillStyle.Render(fmt.Sprintf(" · loaded in %.1fs", a.loadTime.Seconds()))

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, len(a.clients), len(a.quotes), len(a.projects), a.notice)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabClients:
		content = a.renderClientsTab(cw, contentH)
	case tabQuotes:
		content = a.renderQuotesTab(cw)
	case tabProjects:
		content = a.renderProjectsTab(cw)
	case tabActivity:
		content = a.renderActivityTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Place content (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// Tab indexes, matching components.Tabs order.
const (
	tabDashboard = iota
	tabClients
	tabQuotes
	tabProjects
	tabActivity
	tabSettings
)

// ─── Data loading ───────────────────────────────────────────────

// loadDataCmd opens the store and seeds it, consulting the keyword
// spreadsheet when one is configured.
func loadDataCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		s, err := store.Open()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}

		var src seed.RowSource
		if c := sheets.NewClient(cfg.Sheets.SheetID, config.GetSheetsAPIKey(cfg), cfg.Sheets.BaseURL); c != nil {
			src = c
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		clients := seed.Clients(ctx, src)
		if err := seed.Apply(s, clients); err != nil {
			return DataLoadedMsg{
				Store:    s,
				Err:      err,
				LoadTime: time.Since(start),
			}
		}

		return DataLoadedMsg{
			Store:     s,
			FromSheet: src != nil && len(clients) > 3,
			LoadTime:  time.Since(start),
		}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
