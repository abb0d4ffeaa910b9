// Package poster builds the JSON configuration consumed by the
// external birthday-poster generator. The generator itself renders
// the image; this side only prepares a layout and palette it accepts.
package poster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrPinkToken is returned when the palette contains a pink or rose
// color token. The corporate scheme is blue-led and pink was
// explicitly banned.
var ErrPinkToken = errors.New("poster: palette contains a pink/rose token")

// ErrPrimaryNotBlue is returned when the primary color is not a blue.
var ErrPrimaryNotBlue = errors.New("poster: primary color is not blue")

// Dimensions is the output canvas size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Meta describes the poster template.
type Meta struct {
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	Dimensions Dimensions `json:"dimensions"`
}

// ColorScheme is the corporate palette fed to the generator.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Orange    string `json:"orange"`
	Purple    string `json:"purple"`
	White     string `json:"white"`
}

// Grid is one responsive layout band.
type Grid struct {
	Columns   int     `json:"grid_columns"`
	MaxWidth  int     `json:"max_width"`
	Gap       int     `json:"gap"`
	FontScale float64 `json:"font_scale"`
	Centered  bool    `json:"centered,omitempty"`
	Comment   string  `json:"comment,omitempty"`
}

// Config is the full generator configuration document.
type Config struct {
	Poster Meta            `json:"poster_config"`
	Colors ColorScheme     `json:"color_scheme"`
	Grids  map[string]Grid `json:"responsive_grid"`
}

// Band keys of the responsive grid.
const (
	BandSingle  = "1-2"
	BandDouble  = "3-6"
	BandCompact = "7-12"
	BandTriple  = "13-20"
)

// Default returns the approved corporate configuration.
func Default() Config {
	return Config{
		Poster: Meta{
			Name:       "Cumpleaños Mensual",
			Status:     "aprobada",
			Dimensions: Dimensions{Width: 1080, Height: 1920},
		},
		Colors: ColorScheme{
			Primary:   "#0066A4",
			Secondary: "#00A0DF",
			Accent:    "#9CCB3B",
			Orange:    "#F29200",
			Purple:    "#7D4C9E",
			White:     "#FFFFFF",
		},
		Grids: map[string]Grid{
			BandSingle:  {Columns: 1, MaxWidth: 560, Gap: 48, FontScale: 1.0, Centered: true, Comment: "una sola columna centrada"},
			BandDouble:  {Columns: 2, MaxWidth: 920, Gap: 48, FontScale: 1.0, Comment: "dos columnas"},
			BandCompact: {Columns: 2, MaxWidth: 920, Gap: 24, FontScale: 0.9, Comment: "dos columnas, gap reducido"},
			BandTriple:  {Columns: 3, MaxWidth: 1000, Gap: 24, FontScale: 0.75, Comment: "tres columnas, texto menor"},
		},
	}
}

// GridFor picks the layout band for a headcount.
func (c Config) GridFor(n int) (Grid, string) {
	switch {
	case n <= 2:
		return c.Grids[BandSingle], BandSingle
	case n <= 6:
		return c.Grids[BandDouble], BandDouble
	case n <= 12:
		return c.Grids[BandCompact], BandCompact
	default:
		return c.Grids[BandTriple], BandTriple
	}
}

// Validate enforces the palette contract: no pink/rose token anywhere
// and a blue primary.
func (c Config) Validate() error {
	for _, token := range []string{
		c.Colors.Primary, c.Colors.Secondary, c.Colors.Accent,
		c.Colors.Orange, c.Colors.Purple, c.Colors.White,
	} {
		lower := strings.ToLower(token)
		if strings.Contains(lower, "pink") || strings.Contains(lower, "rosa") {
			return ErrPinkToken
		}
	}
	if !isBlue(c.Colors.Primary) {
		return fmt.Errorf("%w: %s", ErrPrimaryNotBlue, c.Colors.Primary)
	}
	return nil
}

// isBlue reports whether a #RRGGBB hex color is blue-dominant.
func isBlue(hex string) bool {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return false
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return b > r && b >= g
}

// Person is one birthday row as it comes from the CRM side.
type Person struct {
	Name string
	Date time.Time
	Role string
}

// Entry is one card as the generator expects it: the day of month is
// rendered as a zero-padded two-digit string.
type Entry struct {
	Name string `json:"nombre"`
	Day  string `json:"dia"`
	Role string `json:"cargo"`
}

// Entries transforms birthday rows into generator cards, preserving
// order.
func Entries(people []Person) []Entry {
	out := make([]Entry, len(people))
	for i, p := range people {
		out[i] = Entry{
			Name: p.Name,
			Day:  fmt.Sprintf("%02d", p.Date.Day()),
			Role: p.Role,
		}
	}
	return out
}

// Document bundles the configuration with the month's entries, the
// shape handed to the generator.
type Document struct {
	Config
	Entries []Entry `json:"cumpleaneros"`
}

// Build validates the config, picks the grid for the headcount and
// assembles the generator document.
func Build(cfg Config, people []Person) (Document, error) {
	if err := cfg.Validate(); err != nil {
		return Document{}, err
	}
	return Document{Config: cfg, Entries: Entries(people)}, nil
}

// Save writes the document as indented JSON.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("poster: encoding config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("poster: writing %s: %w", path, err)
	}
	return nil
}

// Load reads a configuration document from disk.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("poster: reading %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("poster: parsing %s: %w", path, err)
	}
	return cfg, nil
}
