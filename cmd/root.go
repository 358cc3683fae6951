package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var debugRaw bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugRaw, "debug", false, "Dump API requests to stderr")
}

var rootCmd = &cobra.Command{
	Use:   "tixmd",
	Short: "Convert Markdown to rich-text ticket documents",
	Long: `tixmd converts Markdown into the document tree format that issue
trackers and wikis expect, and files tickets directly from the terminal.

Examples:
  tixmd convert notes.md                # print the document JSON
  cat notes.md | tixmd convert          # read from stdin
  tixmd preview notes.md                # render in the terminal
  tixmd ticket create -s "Fix login" -f notes.md
  tixmd log "finished the converter"    # add a daily log entry`,
	Version:           Version,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the Markdown to process: the named file when args
// has one, otherwise stdin.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
