package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.QuitTimes != 3 || cfg.Editor.MessageTimeout != 5*time.Second {
		t.Fatalf("defaults: got %+v", cfg.Editor)
	}
	if cfg.Logging.FilePath == "" {
		t.Fatalf("log path must be filled in")
	}
}

func TestLoad_OverridesAndKeepsMissingKeybindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
editor:
  quit_times: 1
  message_timeout: 2s
  show_line_numbers: true
colors:
  match: "208"
logging:
  level: debug
keybindings:
  find: ctrl+g
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.QuitTimes != 1 || cfg.Editor.MessageTimeout != 2*time.Second || !cfg.Editor.ShowLineNumbers {
		t.Fatalf("editor section: got %+v", cfg.Editor)
	}
	if cfg.Colors.Match != "208" || cfg.Colors.Number != "#dca3a3" {
		t.Fatalf("colors: got %+v", cfg.Colors)
	}
	if cfg.Keybindings["find"] != "ctrl+g" || cfg.Keybindings["save"] != "ctrl+s" {
		t.Fatalf("keybindings: got %v", cfg.Keybindings)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Fatalf("log level: got %v", cfg.LogLevel())
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("editor: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("want parse error")
	}
	if cfg == nil || cfg.Editor.QuitTimes != 3 {
		t.Fatalf("parse failure must still return defaults, got %+v", cfg)
	}
	if cfg.Logging.FilePath == "" {
		t.Fatalf("log path must be filled in after a parse error")
	}
}

func TestLoad_UnreadableFileKeepsLogPath(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err == nil {
		t.Fatalf("want read error for a directory")
	}
	if cfg.Logging.FilePath == "" {
		t.Fatalf("log path must be filled in after a read error")
	}
}

func TestValidate_ResetsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.QuitTimes = -2
	cfg.Editor.MessageTimeout = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "quit_times") {
		t.Fatalf("validate: got %v, want quit_times error first", err)
	}
	if cfg.Editor.QuitTimes != 3 || cfg.Editor.MessageTimeout != 5*time.Second || cfg.Logging.Level != "info" {
		t.Fatalf("validate did not reset: %+v %+v", cfg.Editor, cfg.Logging)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Editor.QuitTimes = 0
	cfg.Logging.FilePath = "/tmp/q.log"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Editor.QuitTimes != 0 || got.Logging.FilePath != "/tmp/q.log" {
		t.Fatalf("round trip: got %+v %+v", got.Editor, got.Logging)
	}
}
