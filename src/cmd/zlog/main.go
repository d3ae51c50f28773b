package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/maksimkurb/zlog/src/internal/commands"
	"github.com/maksimkurb/zlog/src/internal/config"
	"github.com/maksimkurb/zlog/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (default: built-in configuration)")
	flag.StringVar(&ctx.EnvFile, "env-file", "", "Load ZLOG_* variables from this .env file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Emit trace lines in every mode")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Leveled logging, tracing and assertion engine\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  demo                    Print every kind of log, trace and check line\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration as TOML\n")
		fmt.Fprintf(os.Stderr, "  check-config [file]     Validate a configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	ctx.IsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	ctx.Stdout = colorable.NewColorable(os.Stdout)
	ctx.Stderr = colorable.NewColorable(os.Stderr)

	// The application logger falls back to defaults when the configuration
	// cannot be loaded, so the load error itself can be reported.
	cfg, cfgErr := ctx.LoadConfig()
	if cfgErr != nil {
		cfg = config.Default()
	}
	ctx.Logger = ctx.NewLogger(cfg)
	logger := ctx.Logger

	cmds := []commands.Runner{
		commands.CreateDemoCommand(),
		commands.CreateConfigCommand(),
		commands.CreateCheckConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				fatalf(logger, "Failed to initialize command: {}", err)
			}

			if err := cmd.Run(); err != nil {
				fatalf(logger, "Failed to run command: {}", err)
			}

			os.Exit(0)
		}
	}

	if cfgErr != nil {
		logger.Warn("Using default configuration: {}", cfgErr)
	}
	fatalf(logger, "Unknown subcommand: {}", subcommand)
}

func fatalf(l *log.Logger, template string, args ...any) {
	l.Fatal(template, args...)
	os.Exit(1)
}
