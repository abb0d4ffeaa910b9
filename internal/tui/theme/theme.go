// Package theme defines color themes for the crmdash TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = CorporateBlue

// CorporateBlue is the default theme, matching the agency's blue-led
// corporate palette.
var CorporateBlue = Theme{
	Name:          "corporate-blue",
	Background:    lipgloss.Color("#0E1420"),
	Surface:       lipgloss.Color("#18202E"),
	SurfaceHover:  lipgloss.Color("#22304A"),
	SurfaceBright: lipgloss.Color("#2C3C5C"),
	Border:        lipgloss.Color("#25304A"),
	BorderBright:  lipgloss.Color("#3A4A70"),
	BorderAccent:  lipgloss.Color("#3E8FD8"),
	TextDim:       lipgloss.Color("#4A5878"),
	TextMuted:     lipgloss.Color("#8C9AB8"),
	TextPrimary:   lipgloss.Color("#EAF0FA"),
	Accent:        lipgloss.Color("#3E8FD8"),
	AccentBright:  lipgloss.Color("#6FB2EE"),
	AccentDim:     lipgloss.Color("#16263C"),
	Green:         lipgloss.Color("#7DC661"),
	GreenBright:   lipgloss.Color("#9BDE81"),
	Orange:        lipgloss.Color("#E8953C"),
	Red:           lipgloss.Color("#D8554F"),
	Blue:          lipgloss.Color("#4D9DE0"),
	BlueBright:    lipgloss.Color("#7FBCF0"),
	Yellow:        lipgloss.Color("#D9B23D"),
	Magenta:       lipgloss.Color("#B56BB8"),
	Cyan:          lipgloss.Color("#4FB8C8"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("4"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("4"),
	AccentBright:  lipgloss.Color("12"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{CorporateBlue, FlexokiDark, Terminal}

// ByName returns a theme by its name, defaulting to CorporateBlue.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return CorporateBlue
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
