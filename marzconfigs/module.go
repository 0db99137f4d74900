package marzconfigs

import (
	"github.com/cmounce/marzipan/configs"
	"github.com/cmounce/marzipan/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
