package cmd

import (
	"fmt"
	"time"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/model"

	"github.com/spf13/cobra"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Quote pipeline with expiry countdowns",
	RunE:  runQuotes,
}

func init() {
	quotesCmd.AddCommand(quotesApproveCmd)
	quotesCmd.AddCommand(quotesRecoveryCmd)
	rootCmd.AddCommand(quotesCmd)
}

func runQuotes(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	quotes, err := s.Quotes()
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		fmt.Println("\n  No quotes found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("QUOTES  (%d)", len(quotes))))
	fmt.Println()

	now := time.Now()
	expiryByID := make(map[string]string)
	for _, d := range metrics.QuoteExpiries(now, quotes) {
		expiryByID[d.ID] = cli.FormatDays(d.Days)
	}

	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{
			q.ID,
			q.Client,
			q.Service,
			cli.FormatMoney(q.Amount),
			string(q.Status),
			fmt.Sprintf("%d%%", q.Probability),
			expiryByID[q.ID],
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Client", "Service", "Amount", "Status", "Prob", "Expires"},
		Rows:    rows,
	}))

	return nil
}

var quotesApproveCmd = &cobra.Command{
	Use:   "approve <quote-id>",
	Short: "Mark an open quote as approved",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuotesApprove,
}

func runQuotesApprove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ApproveQuote(args[0]); err != nil {
		return err
	}

	fmt.Printf("Quote %s approved.\n", args[0])
	return nil
}

var quotesRecoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Rejected-quote recovery estimate and recontact schedule",
	RunE:  runQuotesRecovery,
}

func runQuotesRecovery(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	quotes, err := s.Quotes()
	if err != nil {
		return err
	}

	rejected := make([]model.Quote, 0)
	for _, q := range quotes {
		if q.Status == model.QuoteRejected {
			rejected = append(rejected, q)
		}
	}
	if len(rejected) == 0 {
		fmt.Println("\n  No rejected quotes to recover.")
		return nil
	}

	estimate := metrics.RecoveryEstimate(quotes)
	avg := metrics.AverageReconversion(quotes)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RECONVERSION"))
	fmt.Println()
	fmt.Printf("  Recoverable from alternatives: %s\n", cli.FormatMoney(estimate))
	fmt.Printf("  Average reconversion score:    %.0f\n", avg)
	fmt.Println()

	schedule := metrics.RecontactSchedule(time.Now(), quotes)
	rows := make([][]string, 0, len(schedule))
	for _, r := range schedule {
		rows = append(rows, []string{
			r.Quote.ID,
			r.Quote.Client,
			fmt.Sprintf("%d", r.Quote.Reconversion),
			metrics.ReconversionPriority(r.Quote.Reconversion),
			cli.FormatDays(r.Days),
			r.Quote.Alternative,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recontact schedule",
		Headers: []string{"ID", "Client", "Score", "Priority", "Recontact", "Alternative"},
		Rows:    rows,
	}))

	return nil
}
