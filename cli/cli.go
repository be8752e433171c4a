package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/membank/membank/cli/cmd"
	"github.com/membank/membank/cli/cmd/repl"
	"github.com/membank/membank/pkg"
)

// CLI is the top-level command-line interface for membank.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Eval   cmd.Eval   `cmd:"" default:"withargs" help:"Translate addresses through a memory description"`
	Fmt    cmd.Fmt    `cmd:""                    help:"Reformat a memory description"`
	Verify cmd.Verify `cmd:""                    help:"Check a memory description against an access trace"`
	Repl   repl.Repl  `cmd:""                    help:"Interactive translation session"`
}

// Run executes the membank CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		"version":           pkg.SemVer(),
		cmd.CacheIdentifier: cacheDir(),
		cmd.DefaultWidthVar: "64",
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so early configuration applies
	// regardless of flag position. TextUnmarshaler on logFormat and
	// logLevel handles those flags during normal parsing, but this
	// early scan also catches boolean flags like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
