// Package seed populates an empty store with the agency's starting
// dataset, pulling client rows from a spreadsheet when one is
// reachable and falling back to a fixed local dataset when not.
package seed

import (
	"context"
	"strings"

	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/store"
)

// RowSource fetches raw spreadsheet rows, header included.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// Clients resolves the startup client list. With a working source the
// keyword sheet is scanned for mentions of the known accounts, but the
// scan only confirms what is already guaranteed: the three core
// clients are included no matter what the sheet says, followed by the
// marketing prospects. A nil source, a fetch error or an empty sheet
// all produce the fixed fallback dataset.
func Clients(ctx context.Context, src RowSource) []model.Client {
	if src == nil {
		return FallbackClients()
	}
	rows, err := src.Rows(ctx)
	if err != nil || len(rows) == 0 {
		return FallbackClients()
	}

	known := map[string]bool{
		"Histocell":       true,
		"Dr. José Prieto": true,
		"Cefes Garage":    true,
	}
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		keyword := strings.ToLower(row[0])
		if strings.Contains(keyword, "histocell") {
			known["Histocell"] = true
		}
		if strings.Contains(keyword, "jose prieto") || strings.Contains(keyword, "otorrino") {
			known["Dr. José Prieto"] = true
		}
		if strings.Contains(keyword, "cefes") || strings.Contains(keyword, "garage") || strings.Contains(keyword, "taller") {
			known["Cefes Garage"] = true
		}
	}

	var out []model.Client
	for _, c := range coreClients {
		if known[c.Name] {
			out = append(out, c)
		}
	}
	out = append(out, prospects...)
	return out
}

// Apply seeds every collection that is still empty. Collections that
// already hold records are left alone, so calling Apply twice is safe.
func Apply(s *store.Store, clients []model.Client) error {
	nClients, nQuotes, nProjects, nActivities, err := s.Counts()
	if err != nil {
		return err
	}

	if nClients == 0 {
		for _, c := range clients {
			if _, err := s.AddClient(c); err != nil {
				return err
			}
		}
	}
	if nQuotes == 0 {
		for _, q := range Quotes() {
			if _, err := s.AddQuote(q); err != nil {
				return err
			}
		}
	}
	if nProjects == 0 {
		for _, p := range Projects() {
			if _, err := s.AddProject(p); err != nil {
				return err
			}
		}
	}
	if nActivities == 0 {
		for _, a := range Activities() {
			if _, err := s.AddActivity(a); err != nil {
				return err
			}
		}
	}
	return nil
}
