// Package daylog manages daily work log files. Each day gets one
// Markdown file named YYYY-MM-DD.md with a YAML front matter header
// recording the date, the sprint number, and the tmux session the
// entries came from.
package daylog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tixmd/tixmd/internal/config"
)

// FrontMatter is the YAML header at the top of each daily log file.
type FrontMatter struct {
	Date    string `yaml:"date"`
	Sprint  int    `yaml:"sprint,omitempty"`
	Session string `yaml:"session,omitempty"`
}

// Log reads and appends entries for a single day.
type Log struct {
	dir string
	day time.Time
}

// DefaultDir returns the log directory under the app data directory.
func DefaultDir() (string, error) {
	dataDir, err := config.GetDataDir()
	if err != nil {
		return "", fmt.Errorf("get data directory: %w", err)
	}
	return filepath.Join(dataDir, "logs"), nil
}

// New returns a Log for the given day, storing files under dir.
func New(dir string, day time.Time) *Log {
	return &Log{dir: dir, day: day}
}

// Path returns the file path for this day's log.
func (l *Log) Path() string {
	return filepath.Join(l.dir, l.day.Format("2006-01-02")+".md")
}

// Append adds one timestamped entry, creating the file with its front
// matter header when this is the first entry of the day.
func (l *Log) Append(entry string, fm FrontMatter) error {
	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("empty log entry")
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	path := l.Path()
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if fresh {
		fm.Date = l.day.Format("2006-01-02")
		header, err := yaml.Marshal(&fm)
		if err != nil {
			return fmt.Errorf("encode front matter: %w", err)
		}
		if _, err := fmt.Fprintf(f, "---\n%s---\n\n", header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	line := fmt.Sprintf("- %s %s\n", time.Now().Format("15:04"), strings.TrimSpace(entry))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

// Read returns the parsed front matter and the body of this day's log.
// A missing file yields zero front matter and an empty body.
func (l *Log) Read() (FrontMatter, string, error) {
	data, err := os.ReadFile(l.Path())
	if os.IsNotExist(err) {
		return FrontMatter{}, "", nil
	}
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("read log file: %w", err)
	}
	return parse(string(data))
}

// parse splits a log file into front matter and body.
// Format: ---\n<yaml>\n---\n<body>
func parse(content string) (FrontMatter, string, error) {
	var fm FrontMatter
	if !strings.HasPrefix(content, "---\n") {
		return fm, content, nil
	}
	rest := content[len("---\n"):]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return fm, content, nil
	}
	header := rest[:idx+1]
	body := strings.TrimPrefix(rest[idx+len("\n---"):], "\n")
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return fm, content, fmt.Errorf("parse front matter: %w", err)
	}
	return fm, strings.TrimPrefix(body, "\n"), nil
}

// SprintNumber computes the 1-based sprint containing now, given the
// first sprint's start date and the sprint length in days. Returns 0
// when the epoch is unset or in the future.
func SprintNumber(epoch time.Time, lengthDays int, now time.Time) int {
	if epoch.IsZero() || lengthDays <= 0 || now.Before(epoch) {
		return 0
	}
	days := int(now.Sub(epoch).Hours() / 24)
	return days/lengthDays + 1
}
