package macros

import (
	"errors"
	"fmt"

	"github.com/cmounce/marzipan/lines"
)

var (
	// ErrNotFound is returned by fetchers for missing resources.
	ErrNotFound = errors.New("not found")

	ErrDepthExceeded = errors.New("macro expansion nested too deeply")
	ErrIncludeCycle  = errors.New("include cycle")
	ErrUnknownMacro  = errors.New("unknown macro")
	ErrSyntax        = errors.New("malformed macro")
)

// MacroError is a failure expanding the macro line at Pos.
type MacroError struct {
	Pos  lines.Pos
	Name string
	Err  error
}

func (m *MacroError) Error() string {
	if m.Name == "" {
		return fmt.Sprintf("%s: %v", m.Pos, m.Err)
	}
	return fmt.Sprintf("%s: %%%s: %v", m.Pos, m.Name, m.Err)
}

func (m *MacroError) Unwrap() error {
	return m.Err
}

func (m *MacroError) Position() lines.Pos {
	return m.Pos
}
