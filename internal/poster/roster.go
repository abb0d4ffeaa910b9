package poster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"
)

const rosterDateLayout = "2006-01-02"

// LoadPeople reads birthday rows from a CSV file with the columns
// nombre,fecha,cargo where fecha is an ISO date. A header row is
// skipped when the date column doesn't parse.
func LoadPeople(path string) ([]Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("poster: reading %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("poster: parsing %s: %w", path, err)
	}

	people := make([]Person, 0, len(records))
	for i, rec := range records {
		date, err := time.Parse(rosterDateLayout, strings.TrimSpace(rec[1]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("poster: row %d: bad date %q", i+1, rec[1])
		}
		people = append(people, Person{
			Name: strings.TrimSpace(rec[0]),
			Date: date,
			Role: strings.TrimSpace(rec[2]),
		})
	}
	return people, nil
}

// FilterMonth keeps the entries whose birthday falls in month.
func FilterMonth(people []Person, month time.Month) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if p.Date.Month() == month {
			out = append(out, p)
		}
	}
	return out
}
