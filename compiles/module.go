package compiles

import (
	"github.com/cmounce/marzipan/includes"
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/macros"
	"github.com/cmounce/marzipan/marzconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Includes includes.Module
	Configs  marzconfigs.Module
	Logs     logs.Module
}

func (Module) Compiler(
	fetcher macros.Fetcher,
	maxDepth marzconfigs.MaxIncludeDepth,
	workers marzconfigs.Workers,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Compiler {
	return Compiler{
		Fetcher:  fetcher,
		MaxDepth: int(maxDepth),
		Workers:  int(workers),
		Logger:   logger,
		NewSpan:  newSpan,
	}
}
