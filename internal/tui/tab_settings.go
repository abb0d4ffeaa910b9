package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iamagencia/crmdash/internal/config"
	"github.com/iamagencia/crmdash/internal/tui/components"
	"github.com/iamagencia/crmdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

// settingsFields is the fixed edit order of the settings tab.
var settingsFields = []string{
	"Owner",
	"Default city",
	"Sheet ID",
	"Sheets API key",
	"SMTP host",
	"SMTP port",
	"SMTP user",
	"SMTP password",
	"Theme",
}

func (a App) settingValue(idx int) string {
	switch idx {
	case 0:
		return a.cfg.General.Owner
	case 1:
		return a.cfg.General.DefaultCity
	case 2:
		return a.cfg.Sheets.SheetID
	case 3:
		return a.cfg.Sheets.APIKey
	case 4:
		return a.cfg.SMTP.Host
	case 5:
		return strconv.Itoa(a.cfg.SMTP.Port)
	case 6:
		return a.cfg.SMTP.User
	case 7:
		return a.cfg.SMTP.Password
	case 8:
		return a.cfg.Appearance.Theme
	}
	return ""
}

func (a *App) setSettingValue(idx int, v string) {
	v = strings.TrimSpace(v)
	switch idx {
	case 0:
		a.cfg.General.Owner = v
	case 1:
		a.cfg.General.DefaultCity = v
	case 2:
		a.cfg.Sheets.SheetID = v
	case 3:
		a.cfg.Sheets.APIKey = v
	case 4:
		a.cfg.SMTP.Host = v
	case 5:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			a.cfg.SMTP.Port = n
		}
	case 6:
		a.cfg.SMTP.User = v
	case 7:
		a.cfg.SMTP.Password = v
	case 8:
		a.cfg.Appearance.Theme = theme.ByName(v).Name
		theme.SetActive(a.cfg.Appearance.Theme)
	}
}

func (a App) updateSettingsKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < len(settingsFields)-1 {
			a.settings.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return true, a, nil
	case "t":
		// Cycle through the built-in themes
		next := 0
		for i, th := range theme.All {
			if th.Name == a.cfg.Appearance.Theme {
				next = (i + 1) % len(theme.All)
			}
		}
		a.cfg.Appearance.Theme = theme.All[next].Name
		theme.SetActive(a.cfg.Appearance.Theme)
		_ = config.Save(a.cfg)
		a.notice = "theme: " + a.cfg.Appearance.Theme
		return true, a, nil
	case "enter":
		ti := textinput.New()
		ti.SetValue(a.settingValue(a.settings.cursor))
		ti.CursorEnd()
		ti.Focus()
		ti.CharLimit = 128
		if settingsFields[a.settings.cursor] == "SMTP password" ||
			settingsFields[a.settings.cursor] == "Sheets API key" {
			ti.EchoMode = textinput.EchoPassword
		}
		a.settings.input = ti
		a.settings.editing = true
		return true, a, textinput.Blink
	}
	return false, a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.setSettingValue(a.settings.cursor, a.settings.input.Value())
		a.settings.editing = false
		if err := config.Save(a.cfg); err != nil {
			a.notice = "save failed: " + err.Error()
		} else {
			a.notice = "settings saved"
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, field := range settingsFields {
		marker := "  "
		label := labelStyle.Render(field)
		if i == a.settings.cursor {
			marker = selStyle.Render("▸ ")
			label = selStyle.Width(18).Render(field)
		}

		if i == a.settings.cursor && a.settings.editing {
			fmt.Fprintf(&b, "%s%s%s\n", marker, label, a.settings.input.View())
			continue
		}

		value := a.settingValue(i)
		if value == "" {
			value = "(not set)"
		} else if field == "SMTP password" || field == "Sheets API key" {
			value = strings.Repeat("•", 8)
		}
		fmt.Fprintf(&b, "%s%s%s\n", marker, label, valueStyle.Render(truncStr(value, 48)))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[enter] edit · [t] cycle theme · stored at " + config.ConfigPath()))

	return components.ContentCard("Settings", strings.TrimRight(b.String(), "\n"), cw)
}
