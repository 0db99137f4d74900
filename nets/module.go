package nets

import (
	"github.com/cmounce/marzipan/configs"
	"github.com/cmounce/marzipan/logs"
	"github.com/reusee/dscope"
)

// Module provides the HTTP client used for remote includes.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
