package commands

import (
	"flag"

	"github.com/maksimkurb/zlog/src/internal/config"
	zerrors "github.com/maksimkurb/zlog/src/internal/errors"
)

func CreateConfigCommand() *ConfigCommand {
	gc := &ConfigCommand{
		fs: flag.NewFlagSet("config", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.output, "output", "", "Write the configuration to this file instead of stdout")
	return gc
}

type ConfigCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	cfg    *config.Config
	output string
}

func (g *ConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ConfigCommand) Run() error {
	if g.output != "" {
		if err := g.cfg.WriteConfig(g.output); err != nil {
			return err
		}
		if g.ctx.Logger != nil {
			g.ctx.Logger.Info("Configuration written to {}", g.output)
		}
		return nil
	}

	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return zerrors.NewInternalError("failed to serialize configuration", err)
	}
	_, err = buf.WriteTo(g.ctx.stdout())
	return err
}
