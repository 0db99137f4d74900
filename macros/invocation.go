package macros

import (
	"fmt"
	"strings"
)

// Invocation is a parsed macro line: %name "arg" "arg" ...
type Invocation struct {
	Name string
	Args []string
}

func isIdentByte(b byte, first bool) bool {
	switch {
	case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return !first
	}
	return false
}

func ParseInvocation(text string) (ret Invocation, err error) {
	if !strings.HasPrefix(text, "%") {
		return ret, fmt.Errorf("%w: missing %%", ErrSyntax)
	}
	s := text[1:]
	i := 0
	for i < len(s) && isIdentByte(s[i], i == 0) {
		i++
	}
	if i == 0 {
		return ret, fmt.Errorf("%w: expected macro name", ErrSyntax)
	}
	ret.Name = s[:i]

	for {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i == len(s) {
			return ret, nil
		}
		if s[i] != '"' {
			return ret, fmt.Errorf("%w: unexpected %q at column %d", ErrSyntax, s[i], i+2)
		}
		i++
		var arg strings.Builder
		closed := false
		for i < len(s) {
			c := s[i]
			i++
			if c == '"' {
				closed = true
				break
			}
			if c == '\\' && i < len(s) {
				c = s[i]
				i++
			}
			arg.WriteByte(c)
		}
		if !closed {
			return ret, fmt.Errorf("%w: unterminated string", ErrSyntax)
		}
		ret.Args = append(ret.Args, arg.String())
	}
}
