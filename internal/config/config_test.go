package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/firstapi/todo-tui/internal/api"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != api.DefaultBaseURL {
		t.Errorf("expected default base url, got %q", cfg.API.BaseURL)
	}
	if cfg.Sync.PollInterval.Std() != 60*time.Second {
		t.Errorf("expected 60s poll interval, got %s", cfg.Sync.PollInterval)
	}
	if cfg.Sync.HealthInterval.Std() != 30*time.Second {
		t.Errorf("expected 30s health interval, got %s", cfg.Sync.HealthInterval)
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("expected no timeout by default, got %s", cfg.API.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
api:
  base_url: http://todo.example:9000/api
  timeout: 5s
  headers:
    X-Client: test
sync:
  poll_interval: 2m
ui:
  default_view: dashboard
  default_priority: high
notifications:
  desktop: true
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://todo.example:9000/api" {
		t.Errorf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout.Std() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.API.Timeout)
	}
	if cfg.API.Headers["X-Client"] != "test" {
		t.Errorf("expected header, got %v", cfg.API.Headers)
	}
	if cfg.Sync.PollInterval.Std() != 2*time.Minute {
		t.Errorf("expected 2m poll interval, got %s", cfg.Sync.PollInterval)
	}
	// Unset keys keep their defaults.
	if cfg.Sync.HealthInterval.Std() != 30*time.Second {
		t.Errorf("expected default health interval, got %s", cfg.Sync.HealthInterval)
	}
	if cfg.UI.DefaultView != ViewDashboard {
		t.Errorf("expected dashboard view, got %q", cfg.UI.DefaultView)
	}
	if cfg.Priority() != api.PriorityHigh {
		t.Errorf("expected high priority, got %q", cfg.Priority())
	}
	if !cfg.Notifications.Desktop {
		t.Error("expected desktop notifications enabled")
	}
}

func TestLoadFileFallsBackToTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[api]
base_url = "http://toml.example/api"

[sync]
poll_interval = "15s"
`)

	cfg, err := LoadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://toml.example/api" {
		t.Errorf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.Sync.PollInterval.Std() != 15*time.Second {
		t.Errorf("expected 15s poll interval, got %s", cfg.Sync.PollInterval)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "bad yaml", file: "config.yaml", content: "api: [unclosed"},
		{name: "bad duration", file: "config.yaml", content: "sync:\n  poll_interval: soon\n"},
		{name: "bad toml", file: "config.toml", content: "[api\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "empty base url", modify: func(c *Config) { c.API.BaseURL = " " }, wantErr: "api.base_url"},
		{name: "negative timeout", modify: func(c *Config) { c.API.Timeout = Duration(-time.Second) }, wantErr: "api.timeout"},
		{name: "zero poll interval", modify: func(c *Config) { c.Sync.PollInterval = 0 }, wantErr: "sync.poll_interval"},
		{name: "zero health interval", modify: func(c *Config) { c.Sync.HealthInterval = 0 }, wantErr: "sync.health_interval"},
		{name: "unknown view", modify: func(c *Config) { c.UI.DefaultView = "kanban" }, wantErr: "ui.default_view"},
		{name: "unknown priority", modify: func(c *Config) { c.UI.DefaultPriority = "urgent" }, wantErr: "ui.default_priority"},
		{name: "unknown log level", modify: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv(BaseURLEnv, "")
	cfg.ApplyEnv()
	if cfg.API.BaseURL != api.DefaultBaseURL {
		t.Errorf("empty env should not override, got %q", cfg.API.BaseURL)
	}

	t.Setenv(BaseURLEnv, "http://env.example/api")
	cfg.ApplyEnv()
	if cfg.API.BaseURL != "http://env.example/api" {
		t.Errorf("expected env override, got %q", cfg.API.BaseURL)
	}
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Error("expected error when file exists")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Errorf("force should overwrite: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("template should parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("template should validate: %v", err)
	}
	if cfg.Sync.PollInterval.Std() != 60*time.Second {
		t.Errorf("expected 60s poll interval, got %s", cfg.Sync.PollInterval)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.API.Timeout = Duration(3 * time.Second)
	cfg.UI.DefaultView = ViewDashboard

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600, got %o", perm)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.API.Timeout != cfg.API.Timeout || got.UI.DefaultView != ViewDashboard {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
