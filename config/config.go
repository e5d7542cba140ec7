// Package config loads the user's quill settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	Editor      EditorConfig      `yaml:"editor"`
	Colors      ColorConfig       `yaml:"colors"`
	Logging     LoggingConfig     `yaml:"logging"`
	Keybindings map[string]string `yaml:"keybindings"`
}

type EditorConfig struct {
	// QuitTimes is how many extra quit presses a dirty document needs.
	QuitTimes       int           `yaml:"quit_times"`
	MessageTimeout  time.Duration `yaml:"message_timeout"`
	ShowLineNumbers bool          `yaml:"show_line_numbers"`
	WatchFile       bool          `yaml:"watch_file"`
}

// ColorConfig holds highlight colours as "#rrggbb" or ANSI numbers.
type ColorConfig struct {
	Number string `yaml:"number"`
	Match  string `yaml:"match"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"` // debug, info, warn, error
	FilePath string `yaml:"file_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			QuitTimes:      3,
			MessageTimeout: 5 * time.Second,
			WatchFile:      true,
		},
		Colors: ColorConfig{
			Number: "#dca3a3",
			Match:  "#268bd2",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keybindings: map[string]string{
			"save": "ctrl+s",
			"find": "ctrl+f",
			"quit": "ctrl+q",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg.fillPaths()
		return cfg, nil
	}
	if err != nil {
		cfg.fillPaths()
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = DefaultConfig()
		cfg.fillPaths()
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyKeybindingDefaults(DefaultConfig().Keybindings)
	cfg.fillPaths()
	return cfg, cfg.Validate()
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate resets out-of-range values to their defaults and reports the
// first one it had to fix.
func (c *Config) Validate() error {
	def := DefaultConfig()
	var first error
	fail := func(format string, args ...any) {
		if first == nil {
			first = fmt.Errorf("config: "+format, args...)
		}
	}

	if c.Editor.QuitTimes < 0 || c.Editor.QuitTimes > 10 {
		fail("quit_times %d out of range [0,10]", c.Editor.QuitTimes)
		c.Editor.QuitTimes = def.Editor.QuitTimes
	}
	if c.Editor.MessageTimeout <= 0 {
		fail("message_timeout must be positive")
		c.Editor.MessageTimeout = def.Editor.MessageTimeout
	}
	if _, ok := levels[strings.ToLower(c.Logging.Level)]; !ok {
		fail("unknown log level %q", c.Logging.Level)
		c.Logging.Level = def.Logging.Level
	}
	return first
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.Logging.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for action, keys := range defaults {
		if strings.TrimSpace(c.Keybindings[action]) == "" {
			c.Keybindings[action] = keys
		}
	}
}

func (c *Config) fillPaths() {
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogPath()
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/quill/config.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quill", "config.yaml"), nil
}

// DefaultLogPath returns the log file under the user cache directory, or
// quill.log in the temp directory when there is none.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "quill.log")
	}
	return filepath.Join(dir, "quill", "quill.log")
}
