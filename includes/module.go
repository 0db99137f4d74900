package includes

import (
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/macros"
	"github.com/cmounce/marzipan/marzconfigs"
	"github.com/cmounce/marzipan/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs marzconfigs.Module
	Nets    nets.Module
}

// Fetcher searches the world directory first, then the configured include
// directories. URLs go over HTTP.
func (Module) Fetcher(
	worldDir marzconfigs.WorldDir,
	includeDirs marzconfigs.IncludeDirs,
	client nets.HTTPClient,
	logger logs.Logger,
) macros.Fetcher {
	var roots []string
	if worldDir != "" {
		roots = append(roots, string(worldDir))
	} else {
		roots = append(roots, ".")
	}
	roots = append(roots, includeDirs...)
	logger.Debug("include search path", "roots", roots)
	return Chain{
		Local: Dir{
			Roots: roots,
		},
		Remote: HTTP{
			Client: client,
		},
	}
}
