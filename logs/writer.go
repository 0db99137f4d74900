package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output. Diagnostics are printed separately,
// so logs never go to stdout where `compile` writes its result.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
