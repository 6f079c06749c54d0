package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	AppName   = "fileops"
	EnvPrefix = "FILEOPS_"
)

const (
	// MaxInputLength bounds directory paths and filenames typed at a prompt.
	MaxInputLength = 255
	// HexBytesPerLine is the chunk size of the hex view.
	HexBytesPerLine = 16
)

const (
	ModeConsole = "console"
	ModeTUI     = "tui"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
	uiModes    = []string{ModeConsole, ModeTUI}
)

// Config is the top-level application configuration.
type Config struct {
	StartDir     string    `yaml:"start_dir"`
	VerifyMirror bool      `yaml:"verify_mirror"`
	UI           UIConfig  `yaml:"ui"`
	Log          LogConfig `yaml:"log"`
}

// UIConfig selects the front end.
type UIConfig struct {
	Mode  string `yaml:"mode"` // console | tui
	Color bool   `yaml:"color"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	Output string `yaml:"output"` // none, stdout, stderr, or file path
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		VerifyMirror: true,
		UI: UIConfig{
			Mode:  ModeConsole,
			Color: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "none",
		},
	}
}

// Load reads a YAML config file and applies env var overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides maps FILEOPS_* env vars to config fields.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_OUTPUT"); v != "" {
		cfg.Log.Output = v
	}
	if v := os.Getenv(EnvPrefix + "UI_MODE"); v != "" {
		cfg.UI.Mode = v
	}
	if v := os.Getenv(EnvPrefix + "START_DIR"); v != "" {
		cfg.StartDir = v
	}
}

// Validate normalizes and checks enumerated fields.
func Validate(cfg *Config) error {
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.UI.Mode = strings.ToLower(cfg.UI.Mode)

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("invalid log level %q (want one of %s)", cfg.Log.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, cfg.Log.Format) {
		return fmt.Errorf("invalid log format %q (want one of %s)", cfg.Log.Format, strings.Join(logFormats, ", "))
	}
	if !slices.Contains(uiModes, cfg.UI.Mode) {
		return fmt.Errorf("invalid ui mode %q (want one of %s)", cfg.UI.Mode, strings.Join(uiModes, ", "))
	}
	cfg.StartDir = strings.TrimSpace(cfg.StartDir)
	if utf8.RuneCountInString(cfg.StartDir) > MaxInputLength {
		return fmt.Errorf("start_dir longer than %d characters", MaxInputLength)
	}
	return nil
}
