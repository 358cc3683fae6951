package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tixmd/tixmd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show tixmd configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "jira.base_url:      %s\n", orUnset(cfg.Jira.BaseURL))
	fmt.Fprintf(out, "jira.email:         %s\n", orUnset(cfg.Jira.Email))
	fmt.Fprintf(out, "jira.api_token:     %s\n", maskSecret(cfg.Jira.APIToken))
	fmt.Fprintf(out, "jira.project:       %s\n", orUnset(cfg.Jira.Project))
	fmt.Fprintf(out, "jira.issue_type:    %s\n", cfg.Jira.IssueType)
	fmt.Fprintf(out, "enhance.model:      %s\n", cfg.Enhance.Model)
	fmt.Fprintf(out, "enhance.api_key:    %s\n", maskSecret(cfg.Enhance.APIKey))
	fmt.Fprintf(out, "sprint.epoch:       %s\n", orUnset(cfg.Sprint.Epoch))
	fmt.Fprintf(out, "sprint.length_days: %d\n", cfg.Sprint.LengthDays)
	fmt.Fprintf(out, "history.enabled:    %t\n", cfg.History.Enabled)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
