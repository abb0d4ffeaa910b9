package poster

import (
	"errors"
	"testing"
	"time"
)

func TestGridBanding(t *testing.T) {
	cfg := Default()

	cases := []struct {
		headcount   int
		wantBand    string
		wantColumns int
	}{
		{1, BandSingle, 1},
		{2, BandSingle, 1},
		{5, BandDouble, 2},
		{6, BandDouble, 2},
		{9, BandCompact, 2},
		{12, BandCompact, 2},
		{18, BandTriple, 3},
		{25, BandTriple, 3},
	}

	for _, tc := range cases {
		grid, band := cfg.GridFor(tc.headcount)
		if band != tc.wantBand {
			t.Errorf("GridFor(%d) band = %s, want %s", tc.headcount, band, tc.wantBand)
		}
		if grid.Columns != tc.wantColumns {
			t.Errorf("GridFor(%d) columns = %d, want %d", tc.headcount, grid.Columns, tc.wantColumns)
		}
	}

	// The compact band keeps two columns but tightens the gap.
	double, _ := cfg.GridFor(5)
	compact, _ := cfg.GridFor(9)
	if compact.Gap >= double.Gap {
		t.Errorf("compact gap %d should be smaller than %d", compact.Gap, double.Gap)
	}
	// The triple band shrinks the text.
	triple, _ := cfg.GridFor(18)
	if triple.FontScale >= compact.FontScale {
		t.Errorf("triple font scale %v should be smaller than %v", triple.FontScale, compact.FontScale)
	}
	single, _ := cfg.GridFor(1)
	if !single.Centered {
		t.Error("single column band should be centered")
	}
}

func TestPaletteInvariant(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	pink := Default()
	pink.Colors.Accent = "pink"
	if err := pink.Validate(); !errors.Is(err, ErrPinkToken) {
		t.Errorf("pink accent error = %v, want ErrPinkToken", err)
	}

	rosa := Default()
	rosa.Colors.Secondary = "rosa-claro"
	if err := rosa.Validate(); !errors.Is(err, ErrPinkToken) {
		t.Errorf("rosa secondary error = %v, want ErrPinkToken", err)
	}

	red := Default()
	red.Colors.Primary = "#CC2200"
	if err := red.Validate(); !errors.Is(err, ErrPrimaryNotBlue) {
		t.Errorf("red primary error = %v, want ErrPrimaryNotBlue", err)
	}
}

func TestEntriesZeroPadDay(t *testing.T) {
	people := []Person{
		{Name: "Elizabeth Eliana Cortés", Date: time.Date(2025, 8, 7, 0, 0, 0, 0, time.UTC), Role: "Técnico Paramédico"},
		{Name: "Myrna Ximena Vergara", Date: time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC), Role: "Nutricionista"},
		{Name: "Kirenia Tofalos", Date: time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC), Role: "Administrativos"},
	}

	entries := Entries(people)
	wantDays := []string{"07", "09", "24"}
	for i, e := range entries {
		if e.Day != wantDays[i] {
			t.Errorf("entry %d day = %q, want %q", i, e.Day, wantDays[i])
		}
	}
	if entries[0].Name != "Elizabeth Eliana Cortés" || entries[0].Role != "Técnico Paramédico" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
}

func TestBuildRejectsBadPalette(t *testing.T) {
	cfg := Default()
	_, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build with default config: %v", err)
	}

	cfg.Colors.Primary = "rosa"
	if _, err := Build(cfg, nil); !errors.Is(err, ErrPinkToken) {
		t.Errorf("err = %v, want ErrPinkToken", err)
	}
}
