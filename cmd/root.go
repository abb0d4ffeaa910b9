package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/config"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/seed"
	"github.com/iamagencia/crmdash/internal/sheets"
	"github.com/iamagencia/crmdash/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagNoSheet bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "crmdash",
	Short: "IAM Agencia CRM dashboard",
	Long:  "Track clients, quotes, projects and activity for the agency from the terminal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoSheet, "no-sheet", false, "Skip the keyword spreadsheet, use local data only")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore is the shared data loading path used by all commands.
// It seeds an in-memory store, consulting the keyword spreadsheet
// when one is configured and --no-sheet is not set.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	s, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	var src seed.RowSource
	if !flagNoSheet {
		if c := sheets.NewClient(cfg.Sheets.SheetID, config.GetSheetsAPIKey(cfg), cfg.Sheets.BaseURL); c != nil {
			src = c
			if !flagQuiet {
				fmt.Fprintln(os.Stderr, "  Checking keyword spreadsheet...")
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	clients := seed.Clients(ctx, src)
	if err := seed.Apply(s, clients); err != nil {
		s.Close()
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	return s, nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	clients, err := s.Clients(store.ClientFilter{})
	if err != nil {
		return err
	}
	quotes, err := s.Quotes()
	if err != nil {
		return err
	}
	projects, err := s.Projects()
	if err != nil {
		return err
	}

	stats := metrics.Aggregate(clients, quotes, projects)

	fmt.Println()
	fmt.Println(cli.RenderTitle("IAM AGENCIA · CRM SUMMARY"))
	fmt.Println()

	rows := [][]string{
		{"Active clients", fmt.Sprintf("%d", stats.ActiveClients)},
		{"Monthly income", cli.FormatMoney(stats.MonthlyIncome)},
		{"Open quotes", fmt.Sprintf("%d", stats.OpenQuotes)},
		{"Pipeline value", cli.FormatMoney(stats.PipelineValue)},
		{"Conversion rate", cli.FormatPercent(stats.ConversionRate)},
		{"Active projects", fmt.Sprintf("%d", stats.ActiveProjects)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	byStatus := metrics.PipelineByStatus(quotes)
	if len(byStatus) > 0 {
		fmt.Println()
		statusRows := make([][]string, 0, len(byStatus))
		var max int64
		for _, st := range byStatus {
			if st.Amount > max {
				max = st.Amount
			}
		}
		for _, st := range byStatus {
			statusRows = append(statusRows, []string{
				string(st.Status),
				fmt.Sprintf("%d", st.Count),
				cli.FormatMoney(st.Amount),
				cli.RenderHorizontalBar(st.Amount, max, 24),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Pipeline by status",
			Headers: []string{"Status", "Quotes", "Amount", ""},
			Rows:    statusRows,
		}))
	}

	return nil
}
