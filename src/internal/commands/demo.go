package commands

import (
	"errors"
	"flag"
	"sync"

	"github.com/maksimkurb/zlog/src/internal/annotate"
	"github.com/maksimkurb/zlog/src/internal/check"
	"github.com/maksimkurb/zlog/src/internal/log"
	"github.com/maksimkurb/zlog/src/internal/trace"
)

func CreateDemoCommand() *DemoCommand {
	gc := &DemoCommand{
		fs: flag.NewFlagSet("demo", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.workers, "workers", 4, "Number of goroutines in the concurrent section")
	gc.fs.IntVar(&gc.lines, "lines", 3, "Lines written by each goroutine")
	return gc
}

// DemoCommand prints every kind of line the engine produces. Test mode is
// forced so the failing checks and critical annotations return.
type DemoCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	log     *log.Logger
	checker *check.Checker
	workers int
	lines   int
}

func (g *DemoCommand) Name() string {
	return g.fs.Name()
}

func (g *DemoCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.workers < 0 || g.lines < 0 {
		return errors.New("workers and lines must not be negative")
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	cfg.General.TestMode = true

	g.log = ctx.NewLogger(cfg)
	g.checker = check.New(g.log)
	return nil
}

func (g *DemoCommand) Run() error {
	defer trace.Method(g.log, "DemoCommand").End()

	g.levels()
	g.checks()
	g.annotations()
	g.concurrent()

	return trace.Do(g.log, "nested scopes", func() error {
		return g.nested(3)
	})
}

func (g *DemoCommand) levels() {
	defer trace.Method(g.log, "DemoCommand").End()

	g.log.Trace("trace line")
	g.log.Debug("debug line")
	g.log.Info("answer={}", 42)
	g.log.Warn("disk usage at {:.1f}%", 91.5)
	g.log.Error("request {1} failed after {0} attempts", 3, "GET /")
	g.log.Fatal("fatal line, logged only")
	g.log.LogIf(log.LevelInfo, g.workers > 0, "running {} workers", g.workers)
	g.log.Var(log.Here(), "workers", g.workers)
}

func (g *DemoCommand) checks() {
	defer trace.Method(g.log, "DemoCommand").End()

	g.checker.Test(log.Here(), 2+2 == 4, "2+2==4")
	g.checker.Test(log.Here(), 2+2 == 5, "2+2==5")
	check.Equal(g.checker, check.KindTest, log.Here(), "len(\"zlog\")", len("zlog"), 4)
	check.NotNil(g.checker, check.KindExpect, log.Here(), "g.log", g.log)
	g.checker.Expect(log.Here(), g.lines > 100, "lines > 100", "only {} lines", g.lines)
	g.checker.Assert(log.Here(), g.workers < 0, "workers < 0")
	g.checker.Require(log.Here(), 1 == 2, "1==2", "must match")
	g.checker.PanicIf(log.Here(), true, "unrecoverable state")
}

func (g *DemoCommand) annotations() {
	defer trace.Method(g.log, "DemoCommand").End()

	annotate.Todo(g.log, log.Here(), "make the worker count adaptive")
	annotate.Performance(g.log, log.Here(), "{} lines per worker", g.lines)
	annotate.Unimplemented(g.log, log.Here(), "json output")
}

func (g *DemoCommand) concurrent() {
	defer trace.Method(g.log, "DemoCommand").End()

	var wg sync.WaitGroup
	for w := 0; w < g.workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < g.lines; i++ {
				g.log.Info("worker {} line {}", id, i)
			}
		}(w)
	}
	wg.Wait()
}

func (g *DemoCommand) nested(depth int) error {
	if depth == 0 {
		return nil
	}
	defer trace.Begin(g.log, "level {}", depth).End()
	return g.nested(depth - 1)
}
