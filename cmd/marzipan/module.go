package main

import (
	"github.com/cmounce/marzipan/compiles"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Compiles compiles.Module
}
