package cmd

import (
	"fmt"
	"os"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/export"
	"github.com/iamagencia/crmdash/internal/store"

	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Client list with filters",
	RunE:  runClients,
}

var (
	clientsStatus   string
	clientsCity     string
	clientsIndustry string
)

func init() {
	clientsCmd.Flags().StringVarP(&clientsStatus, "status", "s", "", "Filter by status (Active, Inactive, Prospect)")
	clientsCmd.Flags().StringVarP(&clientsCity, "city", "c", "", "Filter by city")
	clientsCmd.Flags().StringVarP(&clientsIndustry, "industry", "i", "", "Filter by industry")
	clientsCmd.AddCommand(clientsExportCmd)
	clientsCmd.AddCommand(clientsUpdateCmd)
	rootCmd.AddCommand(clientsCmd)
}

var clientsUpdateCmd = &cobra.Command{
	Use:   "update <id> <field> <value>",
	Short: "Update a single client field",
	Long:  "Update a single client field. Editable: name, email, phone, city, industry, status, monthly_value, website, services, notes.",
	Args:  cobra.ExactArgs(3),
	RunE:  runClientsUpdate,
}

func runClientsUpdate(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.UpdateField(store.Clients, args[0], args[1], args[2]); err != nil {
		return err
	}

	fmt.Printf("Updated %s.%s\n", args[0], args[1])
	return nil
}

func runClients(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	clients, err := s.Clients(store.ClientFilter{
		Status:   clientsStatus,
		City:     clientsCity,
		Industry: clientsIndustry,
	})
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		fmt.Println("\n  No clients match the filters.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CLIENTS  (%d)", len(clients))))
	fmt.Println()

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.City,
			c.Industry,
			string(c.Status),
			cli.FormatMoney(c.MonthlyValue),
			cli.FormatDate(c.LastContact),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "City", "Industry", "Status", "Monthly", "Last contact"},
		Rows:    rows,
	}))

	return nil
}

var clientsExportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export the client book to CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClientsExport,
}

// Top-level alias: `crmdash export` does the same as `crmdash clients export`.
var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export the client book to CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClientsExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runClientsExport(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	clients, err := s.Clients(store.ClientFilter{})
	if err != nil {
		return err
	}

	path, err := export.SaveClients(dir, clients)
	if err != nil {
		return fmt.Errorf("exporting clients: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Exported %d clients to %s\n", len(clients), path)
	return nil
}
