package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tixmd/tixmd/internal/config"
	"github.com/tixmd/tixmd/internal/daylog"
	"github.com/tixmd/tixmd/internal/tmux"
	"github.com/tixmd/tixmd/internal/ui"
)

var logShow bool

var logCmd = &cobra.Command{
	Use:   "log [entry...]",
	Short: "Append to or show today's work log",
	Long: `Keep a daily work log. Each day gets its own Markdown file tagged
with the sprint number and the current tmux session.

Examples:
  tixmd log finished the inline parser
  tixmd log --show`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().BoolVar(&logShow, "show", false, "Render today's log instead of appending")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	dir, err := daylog.DefaultDir()
	if err != nil {
		return err
	}
	log := daylog.New(dir, time.Now())

	if logShow {
		fm, body, err := log.Read()
		if err != nil {
			return err
		}
		if body == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries today.")
			return nil
		}
		header := fm.Date
		if fm.Sprint > 0 {
			header += fmt.Sprintf(" (sprint %d)", fm.Sprint)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMarkdown("# "+header+"\n\n"+body, ui.TerminalWidth()))
		return nil
	}

	entry := strings.Join(args, " ")
	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("nothing to log (pass the entry text, or use --show)")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fm := daylog.FrontMatter{
		Sprint:  daylog.SprintNumber(cfg.SprintEpoch(), cfg.Sprint.LengthDays, time.Now()),
		Session: tmux.SessionName(),
	}
	if err := log.Append(entry, fm); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged to %s\n", log.Path())
	return nil
}
