package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tixmd/tixmd/internal/ui"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render Markdown in the terminal",
	Long: `Render Markdown with terminal styling so you can check how a
ticket description reads before filing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "Wrap width (default: terminal width)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	width := previewWidth
	if width <= 0 {
		width = ui.TerminalWidth()
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMarkdown(text, width))
	return nil
}
