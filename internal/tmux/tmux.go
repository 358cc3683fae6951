// Package tmux reads the current tmux session name, used to tag daily
// log entries with the workspace they came from.
package tmux

import (
	"os"
	"os/exec"
	"strings"
)

// SessionName returns the name of the enclosing tmux session, or empty
// string when not running inside tmux.
func SessionName() string {
	if os.Getenv("TMUX") == "" {
		return ""
	}
	cmd := exec.Command("tmux", "display-message", "-p", "#S")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
