package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/seed"
	"github.com/iamagencia/crmdash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := store.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := seed.Apply(s, seed.FallbackClients()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	a := NewApp()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = m.Update(DataLoadedMsg{Store: s, LoadTime: 100 * time.Millisecond})
	return m.(App)
}

func pressKey(t *testing.T, a App, key string) App {
	t.Helper()
	var msg tea.Msg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := a.Update(msg)
	return m.(App)
}

func TestLoadingViewBeforeData(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewApp()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	if !strings.Contains(view, "Loading client data") {
		t.Errorf("expected loading view before DataLoadedMsg")
	}
}

func TestTabNavigation(t *testing.T) {
	a := newTestApp(t)

	if a.activeTab != tabDashboard {
		t.Fatalf("activeTab = %d, want dashboard", a.activeTab)
	}

	a = pressKey(t, a, "c")
	if a.activeTab != tabClients {
		t.Errorf("after 'c': activeTab = %d, want %d", a.activeTab, tabClients)
	}

	a = pressKey(t, a, "Q")
	if a.activeTab != tabQuotes {
		t.Errorf("after 'Q': activeTab = %d, want %d", a.activeTab, tabQuotes)
	}

	a = pressKey(t, a, "right")
	if a.activeTab != tabProjects {
		t.Errorf("after right: activeTab = %d, want %d", a.activeTab, tabProjects)
	}

	a = pressKey(t, a, "left")
	if a.activeTab != tabQuotes {
		t.Errorf("after left: activeTab = %d, want %d", a.activeTab, tabQuotes)
	}
}

func TestLowercaseQQuits(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestApproveQuoteFromQuotesTab(t *testing.T) {
	a := newTestApp(t)

	a = pressKey(t, a, "Q")

	// Move the cursor to the first open quote
	target := -1
	for i, q := range a.quotes {
		if q.Status.Open() {
			target = i
			break
		}
	}
	if target < 0 {
		t.Fatal("seed data has no open quote")
	}
	for i := 0; i < target; i++ {
		a = pressKey(t, a, "j")
	}

	id := a.quotes[target].ID
	a = pressKey(t, a, "A")

	if a.quotes[target].Status != model.QuoteApproved {
		t.Errorf("quote %s not approved after 'A': status %s", id, a.quotes[target].Status)
	}
	if a.quotes[target].Probability != 100 {
		t.Errorf("approved quote probability = %d, want 100", a.quotes[target].Probability)
	}
	if !strings.Contains(a.notice, "approved") {
		t.Errorf("notice = %q, want approval confirmation", a.notice)
	}
}

func TestApproveRejectedQuoteShowsNotice(t *testing.T) {
	a := newTestApp(t)
	a = pressKey(t, a, "Q")

	target := -1
	for i, q := range a.quotes {
		if q.Status == model.QuoteRejected {
			target = i
			break
		}
	}
	if target < 0 {
		t.Fatal("seed data has no rejected quote")
	}
	for i := 0; i < target; i++ {
		a = pressKey(t, a, "j")
	}

	a = pressKey(t, a, "A")
	if !strings.Contains(a.notice, "only open quotes") {
		t.Errorf("notice = %q, want open-quote warning", a.notice)
	}
	if a.quotes[target].Status != model.QuoteRejected {
		t.Errorf("rejected quote mutated by failed approve: %s", a.quotes[target].Status)
	}
}

func TestClientFilterCycling(t *testing.T) {
	a := newTestApp(t)
	a = pressKey(t, a, "c")

	total := len(a.visibleClients())
	if total != 3 {
		t.Fatalf("visible clients = %d, want 3", total)
	}

	// '' -> Active: fallback data is all active
	a = pressKey(t, a, "f")
	if got := len(a.visibleClients()); got != 3 {
		t.Errorf("Active filter: %d clients, want 3", got)
	}

	// Active -> Prospect: none in the fallback set
	a = pressKey(t, a, "f")
	if got := len(a.visibleClients()); got != 0 {
		t.Errorf("Prospect filter: %d clients, want 0", got)
	}
}

func TestLogCallUpdatesLastContact(t *testing.T) {
	a := newTestApp(t)
	a = pressKey(t, a, "c")

	name := a.visibleClients()[0].Name
	before := len(a.activities)

	a = pressKey(t, a, "l")

	if len(a.activities) != before+1 {
		t.Fatalf("activities = %d, want %d", len(a.activities), before+1)
	}
	latest := a.activities[len(a.activities)-1]
	if latest.Client != name || latest.Type != model.ActivityCall {
		t.Errorf("logged activity = %s/%s, want %s/Call", latest.Client, latest.Type, name)
	}
}

func TestMainViewRendersTabs(t *testing.T) {
	a := newTestApp(t)

	view := a.View()
	for _, want := range []string{"Dashboard", "Clients", "Quotes", "Pipeline by Status"} {
		if !strings.Contains(view, want) {
			t.Errorf("main view missing %q", want)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)

	a = pressKey(t, a, "?")
	if !a.showHelp {
		t.Fatal("help not shown after '?'")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}

	a = pressKey(t, a, "x")
	if a.showHelp {
		t.Error("help still shown after keypress")
	}
}

func TestLoadErrorStopsSpinner(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewApp()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = m.Update(DataLoadedMsg{Err: errors.New("disk full"), LoadTime: time.Second})

	got := m.(App)
	if !got.loaded {
		t.Fatal("app still loading after a failed load")
	}
	if !strings.Contains(got.notice, "load failed") {
		t.Errorf("notice = %q, want load failure", got.notice)
	}
	view := got.View()
	if strings.Contains(view, "Loading client data") {
		t.Error("spinner view still shown after a failed load")
	}
	if !strings.Contains(view, "load failed") {
		t.Error("status bar does not surface the load failure")
	}
}

func TestTooNarrowView(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(m.View(), "Terminal too narrow") {
		t.Error("expected narrow-terminal warning at 60 cols")
	}
}
