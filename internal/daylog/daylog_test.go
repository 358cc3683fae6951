package daylog

import (
	"strings"
	"testing"
	"time"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	log := New(dir, day)

	fm := FrontMatter{Sprint: 7, Session: "work"}
	if err := log.Append("started converter refactor", fm); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append("opened ENG-42", fm); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, body, err := log.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Date != "2026-08-27" {
		t.Errorf("Date = %q", got.Date)
	}
	if got.Sprint != 7 || got.Session != "work" {
		t.Errorf("front matter = %+v", got)
	}
	if !strings.Contains(body, "started converter refactor") || !strings.Contains(body, "opened ENG-42") {
		t.Errorf("body = %q", body)
	}
	// One header, even after two appends.
	if strings.Count(body, "---") != 0 {
		t.Errorf("delimiter leaked into body: %q", body)
	}
}

func TestAppendRejectsEmpty(t *testing.T) {
	log := New(t.TempDir(), time.Now())
	if err := log.Append("   ", FrontMatter{}); err == nil {
		t.Error("blank entry accepted")
	}
}

func TestReadMissingFile(t *testing.T) {
	log := New(t.TempDir(), time.Now())
	fm, body, err := log.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fm != (FrontMatter{}) || body != "" {
		t.Errorf("expected empty result, got %+v %q", fm, body)
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	fm, body, err := parse("- 09:00 plain entry\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if fm != (FrontMatter{}) {
		t.Errorf("front matter = %+v", fm)
	}
	if body != "- 09:00 plain entry\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSprintNumber(t *testing.T) {
	epoch := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"first day", epoch, 1},
		{"last day of first sprint", epoch.AddDate(0, 0, 13), 1},
		{"first day of second sprint", epoch.AddDate(0, 0, 14), 2},
		{"mid year", epoch.AddDate(0, 0, 100), 8},
		{"before epoch", epoch.AddDate(0, 0, -1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SprintNumber(epoch, 14, tt.now); got != tt.want {
				t.Errorf("SprintNumber = %d, want %d", got, tt.want)
			}
		})
	}

	if got := SprintNumber(time.Time{}, 14, time.Now()); got != 0 {
		t.Errorf("zero epoch: got %d", got)
	}
	if got := SprintNumber(epoch, 0, epoch); got != 0 {
		t.Errorf("zero length: got %d", got)
	}
}
