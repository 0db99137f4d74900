package lines

import "fmt"

// Pos locates a line. Source is empty for the object's own code, otherwise
// the include path the line was read from.
type Pos struct {
	Source string
	Line   int
}

func (p Pos) Position() Pos {
	return p
}

func (p Pos) String() string {
	if p.Source == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}
