package config

import (
	"strings"

	"github.com/maksimkurb/zlog/src/internal/log"
)

// Build modes.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// General holds general configuration.
	General GeneralConfig `toml:"general"`
	// Levels holds the minimum severity per build mode.
	Levels LevelsConfig `toml:"levels"`
	// Output controls how lines look and where they go.
	Output OutputConfig `toml:"output"`

	absConfigFilePath string
}

type GeneralConfig struct {
	// Mode is "debug" or "release" (default: the build mode of the binary).
	Mode string `toml:"mode" json:"mode" validate:"required,oneof=debug release"`
	// DisableLogging suppresses all output (default: false).
	DisableLogging bool `toml:"disable_logging" json:"disable_logging"`
	// TestMode makes fatal checks log and return instead of terminating (default: false).
	TestMode bool `toml:"test_mode" json:"test_mode"`
}

type LevelsConfig struct {
	// MinDebug is the lowest emitted severity in debug mode (default: trace).
	MinDebug string `toml:"min_debug" json:"min_debug" validate:"required,severity"`
	// MinRelease is the lowest emitted severity in release mode (default: info).
	MinRelease string `toml:"min_release" json:"min_release" validate:"required,severity"`
}

type OutputConfig struct {
	// Timestamp prefixes every line with [HH:MM:SS] (default: false).
	Timestamp bool `toml:"timestamp" json:"timestamp"`
	// Color is "auto", "always" or "never" (default: auto).
	Color string `toml:"color" json:"color" validate:"required,color_mode"`
	// TraceDull prints scope trace labels in gray (default: true).
	TraceDull bool `toml:"trace_dull" json:"trace_dull"`
	// ForceStdErr sends every line to stderr (default: false).
	ForceStdErr bool `toml:"force_stderr" json:"force_stderr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Mode: defaultMode,
		},
		Levels: LevelsConfig{
			MinDebug:   severityName(log.LevelTrace),
			MinRelease: severityName(log.LevelInfo),
		},
		Output: OutputConfig{
			Color:     ColorAuto,
			TraceDull: true,
		},
	}
}

// IsDebug reports whether assertions are active.
func (c *Config) IsDebug() bool {
	return c.General.Mode == ModeDebug
}

// MinLevel returns the minimum severity for the configured mode. Invalid
// names fall back to the mode default; ValidateConfig reports them.
func (c *Config) MinLevel() log.Severity {
	name, fallback := c.Levels.MinRelease, log.LevelInfo
	if c.IsDebug() {
		name, fallback = c.Levels.MinDebug, log.LevelTrace
	}
	level, err := log.ParseSeverity(name)
	if err != nil {
		return fallback
	}
	return level
}

// UseColor resolves the color mode. isTTY is consulted only in auto mode.
func (c *Config) UseColor(isTTY bool) bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// Options builds the immutable logger options.
func (c *Config) Options(isTTY bool) log.Options {
	return log.Options{
		MinLevel:    c.MinLevel(),
		Disabled:    c.General.DisableLogging,
		Timestamps:  c.Output.Timestamp,
		Color:       c.UseColor(isTTY),
		TraceDull:   c.Output.TraceDull,
		DebugMode:   c.IsDebug(),
		TestMode:    c.General.TestMode,
		ForceStdErr: c.Output.ForceStdErr,
	}
}

// Path returns the absolute path the configuration was loaded from, or an
// empty string for the built-in defaults.
func (c *Config) Path() string {
	return c.absConfigFilePath
}

func severityName(s log.Severity) string {
	return strings.ToLower(s.String())
}
