package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/store"
)

type fakeSource struct {
	rows [][]string
	err  error
}

func (f *fakeSource) Rows(context.Context) ([][]string, error) {
	return f.rows, f.err
}

func TestClientsFallbackIsDeterministic(t *testing.T) {
	first := Clients(context.Background(), nil)
	second := Clients(context.Background(), &fakeSource{err: errors.New("network down")})

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("fallback sizes = %d, %d, want 3 and 3", len(first), len(second))
	}

	wantNames := []string{"Histocell", "Dr. José Prieto", "Cefes Garage"}
	wantEmails := []string{"contacto@histocell.cl", "info@doctorjoseprieto.cl", "contacto@cefesgarage.cl"}
	wantValues := []int64{600000, 1000000, 300000}
	for i := range first {
		if first[i].Name != wantNames[i] {
			t.Errorf("client %d name = %q, want %q", i, first[i].Name, wantNames[i])
		}
		if first[i].Email != wantEmails[i] {
			t.Errorf("client %d email = %q, want %q", i, first[i].Email, wantEmails[i])
		}
		if first[i].MonthlyValue != wantValues[i] {
			t.Errorf("client %d monthly value = %d, want %d", i, first[i].MonthlyValue, wantValues[i])
		}
		if first[i] != second[i] {
			t.Errorf("client %d differs between fallback runs", i)
		}
	}
}

func TestClientsSheetMatchesDoNotChangeResult(t *testing.T) {
	withMentions := Clients(context.Background(), &fakeSource{rows: [][]string{
		{"keyword"},
		{"histocell laboratorio"},
		{"taller mecanico antofagasta"},
	}})
	withoutMentions := Clients(context.Background(), &fakeSource{rows: [][]string{
		{"keyword"},
		{"marketing dental"},
	}})

	if len(withMentions) != len(withoutMentions) {
		t.Fatalf("sizes differ: %d vs %d", len(withMentions), len(withoutMentions))
	}
	for i := range withMentions {
		if withMentions[i].Name != withoutMentions[i].Name {
			t.Errorf("client %d = %q vs %q", i, withMentions[i].Name, withoutMentions[i].Name)
		}
	}

	// Sheet path carries the two prospects on top of the core three.
	if len(withMentions) != 5 {
		t.Fatalf("sheet-backed client count = %d, want 5", len(withMentions))
	}
	if withMentions[3].Status != model.ClientProspect || withMentions[4].Status != model.ClientProspect {
		t.Error("trailing clients should be prospects")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	s, err := store.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	clients := Clients(context.Background(), nil)
	if err := Apply(s, clients); err != nil {
		t.Fatal(err)
	}
	if err := Apply(s, clients); err != nil {
		t.Fatal(err)
	}

	nc, nq, np, na, err := s.Counts()
	if err != nil {
		t.Fatal(err)
	}
	if nc != 3 || nq != 8 || np != 5 || na != 10 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/8/5/10", nc, nq, np, na)
	}

	// Seeded ids stay sequential from 001.
	cs, err := s.Clients(store.ClientFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if cs[0].ID != "CLI001" || cs[2].ID != "CLI003" {
		t.Errorf("client ids = %s..%s, want CLI001..CLI003", cs[0].ID, cs[2].ID)
	}

	// Raw seeding must not rewind last-contact dates.
	if got := cs[0].LastContact.Format("2006-01-02"); got != "2024-03-28" {
		t.Errorf("Histocell last contact = %s, want 2024-03-28", got)
	}
}
