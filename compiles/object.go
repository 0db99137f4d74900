package compiles

import (
	"fmt"
	"strings"
)

// ObjectID locates an object in a world. Board and Stat are indexes; a lone
// object file has Board -1.
type ObjectID struct {
	Board     int
	BoardName string
	Stat      int
	X, Y      int
	Name      string
}

func (o ObjectID) String() string {
	var parts []string
	if o.Board >= 0 {
		parts = append(parts, fmt.Sprintf("board %d %q", o.Board, o.BoardName))
	}
	if o.Name != "" {
		parts = append(parts, "@"+o.Name)
	} else {
		parts = append(parts, fmt.Sprintf("stat %d", o.Stat))
	}
	if o.Board >= 0 {
		parts = append(parts, fmt.Sprintf("(%d,%d)", o.X, o.Y))
	}
	return strings.Join(parts, " ")
}

type Object struct {
	ID   ObjectID
	Code string
}

// ObjectName returns the name given by an @name first line, if any.
func ObjectName(code string) string {
	first, _, _ := strings.Cut(code, "\n")
	if !strings.HasPrefix(first, "@") {
		return ""
	}
	return strings.TrimSpace(first[1:])
}

type ObjectError struct {
	Object ObjectID
	// Source is the object's code before compilation.
	Source string
	Err    error
}

func (o *ObjectError) Error() string {
	return fmt.Sprintf("%s: %v", o.Object, o.Err)
}

func (o *ObjectError) Unwrap() error {
	return o.Err
}
