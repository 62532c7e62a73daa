// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/firstapi/todo-tui/internal/api"
)

// AppName names the config and state directories.
const AppName = "todo-tui"

// BaseURLEnv overrides api.base_url when set.
const BaseURLEnv = "TODO_API_URL"

// View names.
const (
	ViewTasks     = "tasks"
	ViewDashboard = "dashboard"
)

// Config represents the application configuration.
type Config struct {
	API           APIConfig          `yaml:"api" toml:"api"`
	Sync          SyncConfig         `yaml:"sync" toml:"sync"`
	UI            UIConfig           `yaml:"ui" toml:"ui"`
	Notifications NotificationConfig `yaml:"notifications" toml:"notifications"`
	Log           LogConfig          `yaml:"log" toml:"log"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url"`
	// Timeout of zero means requests wait as long as the server does.
	Timeout Duration          `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" toml:"headers,omitempty"`
}

// SyncConfig holds polling intervals.
type SyncConfig struct {
	PollInterval   Duration `yaml:"poll_interval" toml:"poll_interval"`
	HealthInterval Duration `yaml:"health_interval" toml:"health_interval"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	DefaultView     string `yaml:"default_view" toml:"default_view"` // "tasks" or "dashboard"
	DefaultPriority string `yaml:"default_priority" toml:"default_priority"`
	ConfirmDelete   bool   `yaml:"confirm_delete" toml:"confirm_delete"`
}

// NotificationConfig controls desktop alerts.
type NotificationConfig struct {
	Desktop bool `yaml:"desktop" toml:"desktop"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`
	Level string `yaml:"level" toml:"level"`
}

// Duration is a time.Duration written as "60s" or "1m30s" in config files.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: api.DefaultBaseURL,
		},
		Sync: SyncConfig{
			PollInterval:   Duration(60 * time.Second),
			HealthInterval: Duration(30 * time.Second),
		},
		UI: UIConfig{
			DefaultView:     ViewTasks,
			DefaultPriority: string(api.DefaultPriority),
			ConfirmDelete:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StateDir returns the directory for the log file.
func StateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "state", AppName), nil
}

// Load reads the configuration from the default location.
// If no file exists, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path. When path is a missing .yaml
// file, a config.toml beside it is tried before falling back to defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && isYAML(path) {
		alt := filepath.Join(filepath.Dir(path), "config.toml")
		if altData, altErr := os.ReadFile(alt); altErr == nil {
			path, data, err = alt, altData, nil
		}
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

func isYAML(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration as YAML to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// Headers may carry secrets, so owner read/write only.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(BaseURLEnv)); v != "" {
		c.API.BaseURL = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	if c.Sync.PollInterval <= 0 {
		return fmt.Errorf("sync.poll_interval must be positive, got %s", c.Sync.PollInterval)
	}
	if c.Sync.HealthInterval <= 0 {
		return fmt.Errorf("sync.health_interval must be positive, got %s", c.Sync.HealthInterval)
	}
	switch c.UI.DefaultView {
	case ViewTasks, ViewDashboard:
	default:
		return fmt.Errorf("ui.default_view must be %q or %q, got %q", ViewTasks, ViewDashboard, c.UI.DefaultView)
	}
	if _, err := api.ParsePriority(c.UI.DefaultPriority); err != nil {
		return fmt.Errorf("ui.default_priority: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// Priority returns the configured default priority.
func (c *Config) Priority() api.Priority {
	p, err := api.ParsePriority(c.UI.DefaultPriority)
	if err != nil {
		return api.DefaultPriority
	}
	return p
}

// Template is the commented starter file written by "todo-tui init".
const Template = `# todo-tui configuration
api:
  base_url: http://127.0.0.1:8000/api
  # timeout: 10s
  # headers:
  #   X-Client: todo-tui
sync:
  poll_interval: 60s
  health_interval: 30s
ui:
  default_view: tasks # tasks or dashboard
  default_priority: medium # low, medium or high
  confirm_delete: true
notifications:
  desktop: false
log:
  # file: ~/.local/state/todo-tui/todo-tui.log
  level: info
`

// WriteTemplate writes Template to path unless a file is already there.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
