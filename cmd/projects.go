package cmd

import (
	"fmt"
	"time"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/metrics"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project progress and delivery schedule",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	projects, err := s.Projects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("\n  No projects found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTS  (%d)", len(projects))))
	fmt.Println()

	now := time.Now()
	deliveryByID := make(map[string]string)
	for _, d := range metrics.ProjectDeliveries(now, projects) {
		deliveryByID[d.ID] = cli.FormatDays(d.Days)
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Client,
			string(p.Status),
			cli.RenderProgressBar(p.Progress, 16),
			cli.FormatHours(p.WorkedHours, p.EstimatedHours),
			cli.FormatMoney(p.Value),
			deliveryByID[p.ID],
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Project", "Client", "Status", "Progress", "Hours", "Value", "Delivery"},
		Rows:    rows,
	}))

	return nil
}
