package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/iamagencia/crmdash/internal/poster"
)

func TestRunPosterWritesRosterConfig(t *testing.T) {
	dir := t.TempDir()

	from := filepath.Join(dir, "cumpleanos.csv")
	data := "nombre,fecha,cargo\n" +
		"Dra. Ana Soto,1985-07-07,Tecnólogo Médico\n" +
		"Juan Pérez,1990-07-09,Administrativo\n" +
		"Carla Muñoz,1992-07-24,Enfermera\n" +
		"Pedro Rojas,1988-12-01,Químico\n"
	if err := os.WriteFile(from, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "poster_config.json")
	posterOut, posterConfig, posterFrom, posterMonth, posterPeople = out, "", from, 7, nil

	if err := runPoster(nil, nil); err != nil {
		t.Fatalf("runPoster: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var doc poster.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	// December birthday filtered out, July days zero-padded
	if len(doc.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(doc.Entries))
	}
	if doc.Entries[0].Day != "07" {
		t.Errorf("first day = %q, want 07", doc.Entries[0].Day)
	}

	grid, band := doc.GridFor(len(doc.Entries))
	if band != poster.BandDouble || grid.Columns != 2 {
		t.Errorf("3 entries -> band %s, %d columns; want %s, 2", band, grid.Columns, poster.BandDouble)
	}
	if doc.Colors.Primary != poster.Default().Colors.Primary {
		t.Errorf("primary = %q, want default corporate blue", doc.Colors.Primary)
	}
}

func TestRunPosterRejectsBadMonth(t *testing.T) {
	posterOut, posterConfig, posterFrom, posterMonth, posterPeople = "unused.json", "", "", 13, nil
	if err := runPoster(nil, nil); err == nil {
		t.Error("expected error for month 13")
	}
}
