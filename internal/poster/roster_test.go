package poster

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadPeopleSkipsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cumpleanos.csv")
	data := "nombre,fecha,cargo\n" +
		"Dra. Ana Soto,1985-07-07,Tecnólogo Médico\n" +
		"Juan Pérez,1990-08-09,Administrativo\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	people, err := LoadPeople(path)
	if err != nil {
		t.Fatalf("LoadPeople: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("got %d people, want 2", len(people))
	}
	if people[0].Name != "Dra. Ana Soto" || people[0].Date.Day() != 7 {
		t.Errorf("first person = %+v", people[0])
	}
}

func TestLoadPeopleBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cumpleanos.csv")
	data := "Dra. Ana Soto,1985-07-07,Tecnólogo Médico\n" +
		"Juan Pérez,not-a-date,Administrativo\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPeople(path); err == nil {
		t.Error("expected error for bad date past the header row")
	}
}

func TestFilterMonth(t *testing.T) {
	people := []Person{
		{Name: "A", Date: time.Date(1985, time.July, 7, 0, 0, 0, 0, time.UTC)},
		{Name: "B", Date: time.Date(1990, time.August, 9, 0, 0, 0, 0, time.UTC)},
		{Name: "C", Date: time.Date(1992, time.July, 24, 0, 0, 0, 0, time.UTC)},
	}

	july := FilterMonth(people, time.July)
	if len(july) != 2 || july[0].Name != "A" || july[1].Name != "C" {
		t.Errorf("FilterMonth(July) = %+v", july)
	}
	if got := FilterMonth(people, time.December); len(got) != 0 {
		t.Errorf("FilterMonth(December) = %+v, want empty", got)
	}
}
