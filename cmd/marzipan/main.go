package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmounce/marzipan/cmds"
	"github.com/cmounce/marzipan/compiles"
	"github.com/cmounce/marzipan/configs"
	"github.com/cmounce/marzipan/diags"
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/macros"
	"github.com/cmounce/marzipan/marzconfigs"
	"github.com/cmounce/marzipan/modes"
	"github.com/reusee/dscope"
)

var (
	buildFlag   = cmds.Var[string]("build", "compile every object of a ZZT world")
	compileFlag = cmds.Var[string]("compile", "compile one object source file to stdout")
	dumpFlag    = cmds.Var[string]("dump", "print the code of every object of a ZZT world")
	outputFlag  = cmds.Var[string]("-o", "output path of build")
)

type command func(ctx context.Context, env env, path string) int

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	var cmd command
	var path string
	switch {
	case *buildFlag != "":
		cmd, path = build, *buildFlag
	case *compileFlag != "":
		cmd, path = compileFile, *compileFlag
	case *dumpFlag != "":
		cmd, path = dump, *dumpFlag
	default:
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	os.Exit(run(ctx, cmd, path))
}

func run(ctx context.Context, cmd command, path string) (status int) {
	worldDir := filepath.Dir(path)
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(func() marzconfigs.WorldDir {
		return marzconfigs.WorldDir(worldDir)
	})

	scope.Call(func(
		loader configs.Loader,
		compiler compiles.Compiler,
		fetcher macros.Fetcher,
		suffix marzconfigs.OutputSuffix,
		logger logs.Logger,
	) {
		formatter := diags.Formatter{
			File:    path,
			Fetcher: fetcher,
			Color:   diags.UseColor(os.Stderr),
		}
		if _, err := loader.Paths(); err != nil {
			fmt.Fprintln(os.Stderr, formatter.Format(ctx, fmt.Errorf("config: %w", err)))
			status = 1
			return
		}
		status = cmd(ctx, env{
			compiler:  compiler,
			formatter: formatter,
			logger:    logger,
			output:    *outputFlag,
			suffix:    string(suffix),
			stdout:    os.Stdout,
			stderr:    os.Stderr,
		}, path)
	})

	return
}
