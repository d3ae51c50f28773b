package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/maksimkurb/zlog/src/internal/config"
	"github.com/maksimkurb/zlog/src/internal/log"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	return &CheckConfigCommand{
		fs: flag.NewFlagSet("check-config", flag.ExitOnError),
	}
}

type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	log *log.Logger
}

func (g *CheckConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if path := g.fs.Arg(0); path != "" {
		ctx.ConfigPath = path
	}

	g.log = ctx.Logger
	if g.log == nil {
		g.log = ctx.NewLogger(config.Default())
	}
	return nil
}

func (g *CheckConfigCommand) Run() error {
	cfg, err := g.ctx.LoadConfig()
	if err != nil {
		g.log.Error("Failed to load configuration: {}", err)
		return err
	}

	source := cfg.Path()
	if source == "" {
		source = "built-in defaults"
	}

	if err := cfg.ValidateConfig(); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				g.log.Error("{}: {} (got {:q})", e.FieldPath, e.Message, e.Value)
			}
		}
		return fmt.Errorf("configuration %s is invalid: %d error(s)", source, len(validationErrs))
	}

	g.log.Info("Configuration {} is valid", source)
	return nil
}
