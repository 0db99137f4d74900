package diags

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmounce/marzipan/compiles"
	"github.com/cmounce/marzipan/lines"
	"github.com/cmounce/marzipan/macros"
)

const contextLines = 3

type positioned interface {
	Position() lines.Pos
}

// Formatter renders compile errors for people.
type Formatter struct {
	// File is the world or object file being compiled.
	File string
	// Fetcher, if set, is used to show context for lines from includes.
	Fetcher macros.Fetcher
	Color   bool
}

// FormatAll formats every error joined in err, separated by blank lines.
func (f Formatter) FormatAll(ctx context.Context, err error) string {
	var parts []string
	for _, e := range Split(err) {
		parts = append(parts, f.Format(ctx, e))
	}
	return strings.Join(parts, "\n\n")
}

// Split undoes errors.Join.
func Split(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var ret []error
		for _, e := range joined.Unwrap() {
			ret = append(ret, Split(e)...)
		}
		return ret
	}
	return []error{err}
}

// Format renders one error as:
//
//	error: <message>
//	 => file -> board -> @name (x,y) -> line N
//	   |
//	 N | offending line
//	   | ^^^^^^^^^^^^^^
func (f Formatter) Format(ctx context.Context, err error) string {
	var objErr *compiles.ObjectError
	hasObject := errors.As(err, &objErr)
	var pos lines.Pos
	var p positioned
	hasPos := errors.As(err, &p)
	if hasPos {
		pos = p.Position()
	}

	message := err.Error()
	if hasObject {
		message = objErr.Err.Error()
	}
	var sb strings.Builder
	sb.WriteString(f.paint(bold+red, "error"))
	sb.WriteString(f.paint(bold, ": "+message))

	// breadcrumbs
	var crumbs []string
	if f.File != "" {
		crumbs = append(crumbs, f.File)
	}
	if hasObject {
		id := objErr.Object
		if id.Board >= 0 {
			crumbs = append(crumbs, id.BoardName)
			name := "stat"
			if id.Name != "" {
				name = "@" + id.Name
			}
			crumbs = append(crumbs, fmt.Sprintf("%s (%d,%d)", name, id.X, id.Y))
		}
	}
	if hasPos && pos.Line > 0 {
		crumbs = append(crumbs, pos.String())
	}
	if len(crumbs) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.paint(blue, " => "))
		sb.WriteString(strings.Join(crumbs, " -> "))
	}

	// context
	if hasPos && pos.Line > 0 {
		var source string
		var ok bool
		if pos.Source == "" && hasObject {
			source, ok = objErr.Source, true
		} else if pos.Source != "" && f.Fetcher != nil {
			text, err := f.Fetcher.Fetch(ctx, pos.Source)
			source, ok = macros.NormalizeText(text), err == nil
		}
		if ok {
			if excerpt := f.excerpt(source, pos.Line); excerpt != "" {
				sb.WriteString("\n")
				sb.WriteString(excerpt)
			}
		}
	}

	return sb.String()
}

func (f Formatter) excerpt(source string, line int) string {
	all := strings.Split(source, "\n")
	if line < 1 || line > len(all) {
		return ""
	}
	first := max(1, line-contextLines)
	last := min(len(all), line+contextLines)
	width := len(fmt.Sprint(last))
	gutter := fmt.Sprintf(" %*s |", width, "")

	var block []string
	block = append(block, f.paint(blue, gutter))
	for n := first; n <= last; n++ {
		text := all[n-1]
		block = append(block, f.paint(blue, fmt.Sprintf(" %*d |", width, n))+" "+text)
		if n == line {
			indent := len(text) - len(strings.TrimLeft(text, " "))
			carets := max(1, len([]rune(strings.TrimSpace(text))))
			block = append(block, f.paint(blue, gutter)+" "+
				strings.Repeat(" ", indent)+
				f.paint(bold+red, strings.Repeat("^", carets)))
		}
	}
	if last != line {
		block = append(block, f.paint(blue, gutter))
	}
	return strings.Join(block, "\n")
}
