package lines

import "strings"

type Direction uint8

const (
	NoDirection Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return "none"
}

// Label is a label name as written in a definition or a reference.
//
//	touch       Base
//	.loop       Local
//	touch.loop  Base + Local
//	@           Anon (definition)
//	@f, @b      Anon + Dir (reference)
type Label struct {
	Base  string
	Local string
	Anon  bool
	Dir   Direction
}

// Named is a plain label as it appears in vanilla ZZT-OOP.
func Named(name string) Label {
	return Label{Base: name}
}

func (l Label) String() string {
	if l.Anon {
		switch l.Dir {
		case Forward:
			return "@f"
		case Backward:
			return "@b"
		}
		return "@"
	}
	if l.Local != "" {
		return l.Base + "." + l.Local
	}
	return l.Base
}

func (l Label) IsLocal() bool {
	return !l.Anon && l.Local != ""
}

func (l Label) IsQualified() bool {
	return l.IsLocal() && l.Base != ""
}

// IsPlain reports whether the label needs no resolution.
func (l Label) IsPlain() bool {
	return !l.Anon && l.Local == ""
}

// Key is the case-insensitive identity ZZT uses to match labels.
func Key(name string) string {
	return strings.ToLower(name)
}
