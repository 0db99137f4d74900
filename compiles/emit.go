package compiles

import (
	"github.com/cmounce/marzipan/labels"
	"github.com/cmounce/marzipan/lines"
)

// Emit renders resolved sections back into ZZT-OOP.
func Emit(sections []labels.Section) string {
	return lines.Join(labels.Join(sections))
}
