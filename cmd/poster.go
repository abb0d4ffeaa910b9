package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iamagencia/crmdash/internal/poster"

	"github.com/spf13/cobra"
)

var posterCmd = &cobra.Command{
	Use:   "poster",
	Short: "Generate the monthly birthday poster config",
	Long: "Generate the JSON config consumed by the poster generator.\n" +
		"Entries come from a birthdays CSV (--from, columns nombre,fecha,cargo)\n" +
		"or repeated --person NAME:DAY:ROLE flags.",
	RunE: runPoster,
}

var (
	posterOut    string
	posterConfig string
	posterFrom   string
	posterMonth  int
	posterPeople []string
)

func init() {
	posterCmd.Flags().StringVarP(&posterOut, "out", "o", "poster_config.json", "Output file")
	posterCmd.Flags().StringVar(&posterConfig, "config", "", "Existing poster config to validate and reuse")
	posterCmd.Flags().StringVar(&posterFrom, "from", "", "Birthdays CSV file (nombre,fecha,cargo)")
	posterCmd.Flags().IntVarP(&posterMonth, "month", "m", int(time.Now().Month()), "Month to filter birthdays to (1-12)")
	posterCmd.Flags().StringArrayVar(&posterPeople, "person", nil, "Birthday entry as NAME:DAY:ROLE (repeatable)")
	rootCmd.AddCommand(posterCmd)
}

func parsePerson(raw string) (poster.Person, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return poster.Person{}, fmt.Errorf("invalid --person %q, want NAME:DAY:ROLE", raw)
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || day < 1 || day > 31 {
		return poster.Person{}, fmt.Errorf("invalid day in --person %q", raw)
	}

	now := time.Now()
	return poster.Person{
		Name: strings.TrimSpace(parts[0]),
		Date: time.Date(now.Year(), time.Month(posterMonth), day, 0, 0, 0, 0, time.UTC),
		Role: strings.TrimSpace(parts[2]),
	}, nil
}

func runPoster(_ *cobra.Command, _ []string) error {
	if posterMonth < 1 || posterMonth > 12 {
		return fmt.Errorf("invalid month %d", posterMonth)
	}

	cfg := poster.Default()
	if posterConfig != "" {
		loaded, err := poster.Load(posterConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var people []poster.Person
	if posterFrom != "" {
		loaded, err := poster.LoadPeople(posterFrom)
		if err != nil {
			return err
		}
		people = poster.FilterMonth(loaded, time.Month(posterMonth))
	}
	for _, raw := range posterPeople {
		p, err := parsePerson(raw)
		if err != nil {
			return err
		}
		people = append(people, p)
	}

	doc, err := poster.Build(cfg, people)
	if err != nil {
		return err
	}

	if err := poster.Save(posterOut, doc); err != nil {
		return err
	}

	grid, band := doc.GridFor(len(people))
	fmt.Printf("Wrote %s: %d entries, %d-column grid (band %s).\n",
		posterOut, len(people), grid.Columns, band)
	return nil
}
