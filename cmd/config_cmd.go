// Package cmd implements the crmdash CLI commands.
package cmd

import (
	"fmt"

	"github.com/iamagencia/crmdash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "••••"
	}
	return s[:4] + "••••" + s[len(s)-4:]
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Owner:        %s\n", cfg.General.Owner)
	fmt.Printf("    Default city: %s\n", cfg.General.DefaultCity)
	fmt.Println()

	fmt.Println("  [Sheets]")
	if cfg.Sheets.SheetID != "" {
		fmt.Printf("    Sheet ID: %s\n", cfg.Sheets.SheetID)
	} else {
		fmt.Println("    Sheet ID: not configured")
	}
	apiKey := config.GetSheetsAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key:  %s\n", maskSecret(apiKey))
	} else {
		fmt.Println("    API key:  not configured")
	}
	fmt.Println()

	fmt.Println("  [SMTP]")
	if cfg.SMTP.Host != "" {
		fmt.Printf("    Server: %s:%d\n", cfg.SMTP.Host, cfg.SMTP.Port)
		if cfg.SMTP.User != "" {
			fmt.Printf("    User:   %s\n", cfg.SMTP.User)
		}
	} else {
		fmt.Println("    Server: not configured")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Edit settings from the TUI (`crmdash tui`, then `s`).")
	return nil
}
