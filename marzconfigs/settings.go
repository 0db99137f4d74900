package marzconfigs

import (
	"runtime"

	"github.com/cmounce/marzipan/cmds"
	"github.com/cmounce/marzipan/configs"
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/vars"
)

const (
	DefaultMaxIncludeDepth = 16
	DefaultOutputSuffix    = ".out"
)

var (
	maxIncludeDepthFlag = cmds.Var[int]("-max-include-depth", "maximum nesting of macro expansion")
	workersFlag         = cmds.Var[int]("-workers", "number of objects compiled in parallel")
	includeDirsFlag     = cmds.Collect[string]("-include-dir", "additional include search directory, repeatable")
)

func first[T any](loader configs.Loader, logger logs.Logger, path string) T {
	value, err := configs.First[T](loader, path)
	if err != nil {
		logger.Warn("bad config value, using default",
			"path", path,
			"error", err,
		)
	}
	return value
}

type MaxIncludeDepth int

func (Module) MaxIncludeDepth(
	loader configs.Loader,
	logger logs.Logger,
) MaxIncludeDepth {
	return MaxIncludeDepth(vars.FirstNonZero(
		*maxIncludeDepthFlag,
		first[int](loader, logger, "max_include_depth"),
		DefaultMaxIncludeDepth,
	))
}

type Workers int

func (Module) Workers(
	loader configs.Loader,
	logger logs.Logger,
) Workers {
	return Workers(vars.FirstNonZero(
		*workersFlag,
		first[int](loader, logger, "workers"),
		runtime.NumCPU(),
	))
}

type OutputSuffix string

func (Module) OutputSuffix(
	loader configs.Loader,
	logger logs.Logger,
) OutputSuffix {
	return OutputSuffix(vars.FirstNonZero(
		first[string](loader, logger, "output_suffix"),
		DefaultOutputSuffix,
	))
}

// IncludeDirs are searched after the world directory. Flag values come
// first, then every config file's include_dirs in discovery order.
type IncludeDirs []string

func (Module) IncludeDirs(
	loader configs.Loader,
	logger logs.Logger,
) IncludeDirs {
	var ret IncludeDirs
	ret = append(ret, *includeDirsFlag...)
	for dirs, err := range configs.All[[]string](loader, "include_dirs") {
		if err != nil {
			logger.Warn("bad config value", "path", "include_dirs", "error", err)
			break
		}
		ret = append(ret, dirs...)
	}
	return ret
}
