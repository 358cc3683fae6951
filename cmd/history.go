package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tixmd/tixmd/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently created tickets",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of tickets to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	tickets, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tickets recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tCREATED\tSUMMARY")
	for _, t := range tickets {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Key, t.CreatedAt.Local().Format("2006-01-02 15:04"), t.Summary)
	}
	return w.Flush()
}
