package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tixmd/tixmd/internal/config"
	"github.com/tixmd/tixmd/internal/enhance"
	"github.com/tixmd/tixmd/internal/history"
	"github.com/tixmd/tixmd/internal/jira"
	"github.com/tixmd/tixmd/internal/markdown"
)

var (
	ticketSummary string
	ticketFile    string
	ticketProject string
	ticketType    string
	ticketEnhance bool
	ticketDryRun  bool
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "File tickets from Markdown",
}

var ticketCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a ticket from a Markdown description",
	Long: `Create a ticket. The description is read from --file (or stdin),
converted to the tracker's document format, and submitted.

Examples:
  tixmd ticket create -s "Fix login redirect" -f notes.md
  tixmd ticket create -s "Fix login redirect" --enhance --dry-run
  echo "steps to reproduce..." | tixmd ticket create -s "Crash on save"`,
	RunE: runTicketCreate,
}

func init() {
	ticketCreateCmd.Flags().StringVarP(&ticketSummary, "summary", "s", "", "Ticket summary (required)")
	ticketCreateCmd.Flags().StringVarP(&ticketFile, "file", "f", "", "Markdown file with the description (default: stdin)")
	ticketCreateCmd.Flags().StringVar(&ticketProject, "project", "", "Project key (overrides config)")
	ticketCreateCmd.Flags().StringVar(&ticketType, "type", "", "Issue type (overrides config)")
	ticketCreateCmd.Flags().BoolVar(&ticketEnhance, "enhance", false, "Rewrite the description with AI before filing")
	ticketCreateCmd.Flags().BoolVar(&ticketDryRun, "dry-run", false, "Print the request payload instead of filing")
	ticketCreateCmd.MarkFlagRequired("summary")

	ticketCmd.AddCommand(ticketCreateCmd)
	rootCmd.AddCommand(ticketCmd)
}

func runTicketCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	project := cfg.Jira.Project
	if ticketProject != "" {
		project = ticketProject
	}
	issueType := cfg.Jira.IssueType
	if ticketType != "" {
		issueType = ticketType
	}

	var fileArgs []string
	if ticketFile != "" {
		fileArgs = []string{ticketFile}
	}
	text, err := readInput(fileArgs)
	if err != nil {
		return err
	}

	if ticketEnhance {
		enhancer, err := enhance.New(cfg.Enhance.APIKey, cfg.Enhance.Model)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Rewriting description...")
		text, err = enhancer.Rewrite(cmd.Context(), text)
		if err != nil {
			return err
		}
	}

	doc := markdown.Convert(text)

	req := jira.IssueRequest{
		Project:     project,
		Summary:     ticketSummary,
		IssueType:   issueType,
		Description: doc,
	}

	if ticketDryRun {
		out, err := json.MarshalIndent(req.Description, "", "  ")
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Project: %s\nType:    %s\nSummary: %s\n\n%s\n",
			project, issueType, ticketSummary, out)
		return nil
	}

	cfg.Jira.Project = project
	if err := cfg.ValidateJira(); err != nil {
		return err
	}

	client := jira.NewClient(cfg.Jira.BaseURL, cfg.Jira.Email, cfg.Jira.APIToken)
	client.SetDebug(debugRaw)
	created, err := client.CreateIssue(cmd.Context(), req)
	if err != nil {
		return err
	}

	url := client.BrowseURL(created.Key)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n%s\n", created.Key, url)

	if cfg.History.Enabled {
		if err := recordTicket(cmd, created.Key, ticketSummary, project, url); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record ticket: %v\n", err)
		}
	}
	return nil
}

func recordTicket(cmd *cobra.Command, key, summary, project, url string) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), history.Ticket{
		Key:     key,
		Summary: summary,
		Project: project,
		URL:     url,
	})
	return err
}
