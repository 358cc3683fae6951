package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Jira    JiraConfig    `mapstructure:"jira"`
	Enhance EnhanceConfig `mapstructure:"enhance"`
	Sprint  SprintConfig  `mapstructure:"sprint"`
	History HistoryConfig `mapstructure:"history"`
}

// JiraConfig holds the connection settings for the Jira Cloud REST API.
type JiraConfig struct {
	BaseURL   string `mapstructure:"base_url"`   // e.g. https://yourteam.atlassian.net
	Email     string `mapstructure:"email"`      // account email for basic auth
	APIToken  string `mapstructure:"api_token"`  // API token, or ${VAR} reference
	Project   string `mapstructure:"project"`    // default project key
	IssueType string `mapstructure:"issue_type"` // default issue type name
}

// EnhanceConfig configures the optional AI cleanup pass.
type EnhanceConfig struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}

// SprintConfig drives sprint-number detection for daily logs.
// Epoch is the first day of sprint 1 (YYYY-MM-DD); LengthDays is the
// sprint duration. Leaving Epoch empty disables sprint tagging.
type SprintConfig struct {
	Epoch      string `mapstructure:"epoch"`
	LengthDays int    `mapstructure:"length_days"`
}

// HistoryConfig configures the local record of created tickets.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	viper.SetDefault("jira.issue_type", "Task")
	viper.SetDefault("enhance.model", "claude-sonnet-4-5")
	viper.SetDefault("sprint.length_days", 14)
	viper.SetDefault("history.enabled", true)

	// Config file is optional; everything can come from env vars.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	resolveJiraCredentials(&cfg.Jira)
	resolveEnhanceCredentials(&cfg.Enhance)

	return &cfg, nil
}

// resolveJiraCredentials fills Jira settings from the environment when
// the config file leaves them empty: JIRA_BASE_URL, JIRA_EMAIL,
// JIRA_API_TOKEN, JIRA_PROJECT.
func resolveJiraCredentials(cfg *JiraConfig) {
	cfg.BaseURL = expandEnv(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("JIRA_BASE_URL")
	}
	cfg.Email = expandEnv(cfg.Email)
	if cfg.Email == "" {
		cfg.Email = os.Getenv("JIRA_EMAIL")
	}
	cfg.APIToken = expandEnv(cfg.APIToken)
	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("JIRA_API_TOKEN")
	}
	cfg.Project = expandEnv(cfg.Project)
	if cfg.Project == "" {
		cfg.Project = os.Getenv("JIRA_PROJECT")
	}
}

// resolveEnhanceCredentials falls back to ANTHROPIC_API_KEY.
func resolveEnhanceCredentials(cfg *EnhanceConfig) {
	cfg.APIKey = expandEnv(cfg.APIKey)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

// SprintEpoch parses the configured sprint epoch. Returns the zero time
// when sprint tagging is disabled or the value is malformed.
func (c *Config) SprintEpoch() time.Time {
	if c.Sprint.Epoch == "" {
		return time.Time{}
	}
	epoch, err := time.Parse("2006-01-02", c.Sprint.Epoch)
	if err != nil {
		return time.Time{}
	}
	return epoch
}

// ValidateJira reports the first missing setting required to talk to
// the Jira API.
func (c *Config) ValidateJira() error {
	switch {
	case c.Jira.BaseURL == "":
		return fmt.Errorf("jira.base_url is not set (or JIRA_BASE_URL)")
	case c.Jira.Email == "":
		return fmt.Errorf("jira.email is not set (or JIRA_EMAIL)")
	case c.Jira.APIToken == "":
		return fmt.Errorf("jira.api_token is not set (or JIRA_API_TOKEN)")
	case c.Jira.Project == "":
		return fmt.Errorf("jira.project is not set (or JIRA_PROJECT)")
	}
	return nil
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// GetConfigDir returns the XDG config directory for tixmd.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "tixmd"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tixmd"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetDataDir returns the XDG data directory for tixmd.
// Uses $XDG_DATA_HOME if set, otherwise ~/.local/share
func GetDataDir() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "tixmd"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "tixmd"), nil
}
