package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/zlog/src/internal/config"
	zerrors "github.com/maksimkurb/zlog/src/internal/errors"
	"github.com/maksimkurb/zlog/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	EnvFile    string
	Verbose    bool
	IsTTY      bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
	// Logger is the application logger built by NewLogger.
	Logger *log.Logger
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

func (ctx *AppContext) stderr() io.Writer {
	if ctx.Stderr == nil {
		return os.Stderr
	}
	return ctx.Stderr
}

// LoadConfig builds the effective configuration: defaults, then the config
// file if one is set, then the env file, then ZLOG_* variables. Verbose
// lowers the minimum level of the active mode to trace.
func (ctx *AppContext) LoadConfig() (*config.Config, error) {
	cfg := config.Default()
	if ctx.ConfigPath != "" {
		loaded, err := config.LoadConfig(ctx.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.EnvFile != "" {
		if err := config.LoadEnvFile(ctx.EnvFile); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if ctx.Verbose {
		cfg.Levels.MinDebug = "trace"
		cfg.Levels.MinRelease = "trace"
	}
	return cfg, nil
}

// NewLogger creates a logger for cfg writing to the context streams.
func (ctx *AppContext) NewLogger(cfg *config.Config) *log.Logger {
	opts := cfg.Options(ctx.IsTTY)
	opts.Stdout = ctx.stdout()
	opts.Stderr = ctx.stderr()
	return log.New(opts)
}

// loadAndValidateConfigOrFail loads the effective configuration and validates it.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	cfg, err := ctx.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, zerrors.NewValidationError("configuration validation failed", err)
	}

	return cfg, nil
}
