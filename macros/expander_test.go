package macros

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cmounce/marzipan/lines"
)

type mapFetcher map[string]string

func (m mapFetcher) Fetch(_ context.Context, path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return text, nil
}

func expand(t *testing.T, e Expander, code string) (string, []lines.Line, error) {
	t.Helper()
	ls, err := e.Expand(context.Background(), lines.ParseAll(code, ""))
	if err != nil {
		return "", nil, err
	}
	return lines.Join(ls), ls, nil
}

func TestInclude(t *testing.T) {
	e := Expander{
		Fetcher: mapFetcher{
			"bb.txt": "bar\nbaz\n",
		},
	}
	got, ls, err := expand(t, e, "foo\n%include \"bb.txt\"\nquux")
	if err != nil {
		t.Fatal(err)
	}
	if got != "foo\nbar\nbaz\nquux" {
		t.Fatalf("got %q", got)
	}
	if p := ls[2].Position(); p.Source != "bb.txt" || p.Line != 2 {
		t.Fatalf("got %v", p)
	}
	if p := ls[3].Position(); p.Source != "" || p.Line != 3 {
		t.Fatalf("got %v", p)
	}
}

func TestIncludeCRLF(t *testing.T) {
	e := Expander{
		Fetcher: mapFetcher{
			"foo.txt": "foo\r\nbar\r\n",
		},
	}
	got, _, err := expand(t, e, "%include \"foo.txt\"")
	if err != nil {
		t.Fatal(err)
	}
	if got != "foo\nbar" {
		t.Fatalf("got %q", got)
	}
}

func TestNestedInclude(t *testing.T) {
	e := Expander{
		Fetcher: mapFetcher{
			"a": "a1\n%include \"b\"\na3",
			"b": "b1",
		},
	}
	got, _, err := expand(t, e, "%include \"a\"\n%include \"b\"")
	if err != nil {
		t.Fatal(err)
	}
	if got != "a1\nb1\na3\nb1" {
		t.Fatalf("got %q", got)
	}
}

func TestUnknownMacro(t *testing.T) {
	_, _, err := expand(t, Expander{}, "#end\n%foo")
	if !errors.Is(err, ErrUnknownMacro) {
		t.Fatalf("got %v", err)
	}
	var macroErr *MacroError
	if !errors.As(err, &macroErr) {
		t.Fatalf("got %T", err)
	}
	if macroErr.Pos.Line != 2 || macroErr.Name != "foo" {
		t.Fatalf("got %+v", macroErr)
	}
}

func TestIncludeNotFound(t *testing.T) {
	_, _, err := expand(t, Expander{Fetcher: mapFetcher{}}, "%include \"nope.txt\"")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestIncludeArgs(t *testing.T) {
	for _, code := range []string{
		"%include",
		"%include \"a\" \"b\"",
		"%include a",
		"%include \"a",
		"%",
	} {
		_, _, err := expand(t, Expander{Fetcher: mapFetcher{"a": ""}}, code)
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("%q: got %v", code, err)
		}
	}
}

func TestIncludeCycle(t *testing.T) {
	e := Expander{
		Fetcher: mapFetcher{
			"a.txt": "%include \"b.txt\"",
			"b.txt": "x\n%include \"./a.txt\"",
		},
	}
	_, _, err := expand(t, e, "%include \"a.txt\"")
	if !errors.Is(err, ErrIncludeCycle) {
		t.Fatalf("got %v", err)
	}
	var macroErr *MacroError
	if !errors.As(err, &macroErr) {
		t.Fatal()
	}
	if macroErr.Pos.Source != "b.txt" || macroErr.Pos.Line != 2 {
		t.Fatalf("got %v", macroErr.Pos)
	}
}

func TestDepthExceeded(t *testing.T) {
	fetcher := mapFetcher{}
	for i := range 5 {
		fetcher[fmt.Sprint(i)] = fmt.Sprintf("%%include \"%d\"", i+1)
	}
	fetcher["5"] = "done"

	got, _, err := expand(t, Expander{Fetcher: fetcher, MaxDepth: 6}, "%include \"0\"")
	if err != nil {
		t.Fatal(err)
	}
	if got != "done" {
		t.Fatalf("got %q", got)
	}

	_, _, err = expand(t, Expander{Fetcher: fetcher, MaxDepth: 5}, "%include \"0\"")
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestParseInvocation(t *testing.T) {
	inv, err := ParseInvocation(`%include "a \"b\" \\c"  "d"`)
	if err != nil {
		t.Fatal(err)
	}
	if inv.Name != "include" || len(inv.Args) != 2 {
		t.Fatalf("got %+v", inv)
	}
	if inv.Args[0] != `a "b" \c` || inv.Args[1] != "d" {
		t.Fatalf("got %q", inv.Args)
	}
	if _, err := ParseInvocation("%1foo"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("got %v", err)
	}
}
