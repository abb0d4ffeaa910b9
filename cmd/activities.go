package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/iamagencia/crmdash/internal/cli"
	"github.com/iamagencia/crmdash/internal/metrics"
	"github.com/iamagencia/crmdash/internal/model"
	"github.com/iamagencia/crmdash/internal/store"

	"github.com/spf13/cobra"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Interaction history, newest first",
	RunE:  runActivities,
}

var (
	activitiesLimit int
	logNextAction   string
)

func init() {
	activitiesCmd.Flags().IntVarP(&activitiesLimit, "limit", "l", 20, "Number of activities to show")
	activitiesLogCmd.Flags().StringVar(&logNextAction, "next", "", "Planned follow-up action")
	activitiesCmd.AddCommand(activitiesLogCmd)
	rootCmd.AddCommand(activitiesCmd)
}

func runActivities(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	acts, err := s.Activities()
	if err != nil {
		return err
	}
	if len(acts) == 0 {
		fmt.Println("\n  No activity found.")
		return nil
	}

	recent := metrics.RecentActivities(acts, activitiesLimit)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITY  (showing %d of %d)", len(recent), len(acts))))
	fmt.Println()

	rows := make([][]string, 0, len(recent))
	for _, a := range recent {
		rows = append(rows, []string{
			cli.FormatDate(a.Date),
			string(a.Type),
			a.Client,
			a.Description,
			string(a.Status),
			a.NextAction,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Type", "Client", "Description", "Status", "Next action"},
		Rows:    rows,
	}))

	return nil
}

var activitiesLogCmd = &cobra.Command{
	Use:   "log <client> <type> <description>",
	Short: "Log a client interaction",
	Long:  "Log a client interaction. Type is one of: Call, Email, Meeting, Proposal, Follow-up.",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runActivitiesLog,
}

func runActivitiesLog(_ *cobra.Command, args []string) error {
	client := args[0]
	typ := model.ActivityType(args[1])
	description := strings.Join(args[2:], " ")

	valid := false
	for _, t := range model.ActivityTypes {
		if t == typ {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown activity type %q", args[1])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, ok, err := s.ClientByName(client); err != nil {
		return err
	} else if !ok {
		fmt.Fprintf(os.Stderr, "  Warning: no client named %q, logging anyway\n", client)
	}

	act, err := s.RecordActivity(client, typ, description, store.ActivityOptions{
		NextAction: logNextAction,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s (%s for %s).\n", act.ID, act.Type, act.Client)
	return nil
}
