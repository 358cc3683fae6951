package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tixmd/tixmd/internal/markdown"
)

var convertCompact bool

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert Markdown to document JSON",
	Long: `Convert Markdown to the rich-text document JSON used by issue
trackers. Reads from the given file, or stdin when no file is given.

Examples:
  tixmd convert notes.md
  cat notes.md | tixmd convert --compact`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertCompact, "compact", false, "Emit compact JSON on one line")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	doc := markdown.Convert(text)

	var out []byte
	if convertCompact {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
