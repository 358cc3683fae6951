package config

import (
	"testing"
	"time"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TIXMD_TEST_TOKEN", "secret")

	tests := []struct {
		in   string
		want string
	}{
		{"${TIXMD_TEST_TOKEN}", "secret"},
		{"$TIXMD_TEST_TOKEN", "secret"},
		{"literal-value", "literal-value"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveJiraCredentialsEnvFallback(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "https://team.atlassian.net")
	t.Setenv("JIRA_EMAIL", "dev@example.com")
	t.Setenv("JIRA_API_TOKEN", "tok")
	t.Setenv("JIRA_PROJECT", "ENG")

	var cfg JiraConfig
	resolveJiraCredentials(&cfg)

	if cfg.BaseURL != "https://team.atlassian.net" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Email != "dev@example.com" || cfg.APIToken != "tok" || cfg.Project != "ENG" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestResolveJiraCredentialsConfigWins(t *testing.T) {
	t.Setenv("JIRA_PROJECT", "ENV")
	cfg := JiraConfig{Project: "CFG"}
	resolveJiraCredentials(&cfg)
	if cfg.Project != "CFG" {
		t.Errorf("Project = %q, want CFG", cfg.Project)
	}
}

func TestSprintEpoch(t *testing.T) {
	cfg := &Config{Sprint: SprintConfig{Epoch: "2026-01-05"}}
	got := cfg.SprintEpoch()
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SprintEpoch = %v, want %v", got, want)
	}

	cfg = &Config{}
	if !cfg.SprintEpoch().IsZero() {
		t.Errorf("empty epoch should be zero time")
	}

	cfg = &Config{Sprint: SprintConfig{Epoch: "garbage"}}
	if !cfg.SprintEpoch().IsZero() {
		t.Errorf("malformed epoch should be zero time")
	}
}

func TestValidateJira(t *testing.T) {
	cfg := &Config{Jira: JiraConfig{
		BaseURL:  "https://team.atlassian.net",
		Email:    "dev@example.com",
		APIToken: "tok",
		Project:  "ENG",
	}}
	if err := cfg.ValidateJira(); err != nil {
		t.Errorf("complete config rejected: %v", err)
	}

	cfg.Jira.APIToken = ""
	if err := cfg.ValidateJira(); err == nil {
		t.Errorf("missing token accepted")
	}
}
