package macros

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/cmounce/marzipan/lines"
	"github.com/cmounce/marzipan/logs"
)

const DefaultMaxDepth = 16

// Fetcher loads the text of an included resource. Implementations must be
// safe for concurrent use and return an error wrapping ErrNotFound for
// missing resources.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

type FetcherFunc func(ctx context.Context, path string) (string, error)

var _ Fetcher = FetcherFunc(nil)

func (f FetcherFunc) Fetch(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// Expander replaces macro lines with the lines they produce.
type Expander struct {
	Fetcher  Fetcher
	MaxDepth int
	Logger   logs.Logger
	// Object is exposed to scripts as the `object` global.
	Object any
}

func (e Expander) maxDepth() int {
	if e.MaxDepth > 0 {
		return e.MaxDepth
	}
	return DefaultMaxDepth
}

func (e Expander) logger() logs.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Expand returns ls with every macro line replaced, recursively. Any error
// aborts the whole expansion.
func (e Expander) Expand(ctx context.Context, ls []lines.Line) ([]lines.Line, error) {
	return e.expand(ctx, ls, 0, nil)
}

func (e Expander) expand(ctx context.Context, ls []lines.Line, depth int, stack []string) ([]lines.Line, error) {
	ret := make([]lines.Line, 0, len(ls))
	for _, line := range ls {
		m, ok := line.(lines.Macro)
		if !ok {
			ret = append(ret, line)
			continue
		}
		expanded, err := e.expandMacro(ctx, m, depth, stack)
		if err != nil {
			return nil, err
		}
		ret = append(ret, expanded...)
	}
	return ret, nil
}

func (e Expander) expandMacro(ctx context.Context, m lines.Macro, depth int, stack []string) ([]lines.Line, error) {
	inv, err := ParseInvocation(m.Text)
	if err != nil {
		return nil, &MacroError{Pos: m.Pos, Err: err}
	}
	fail := func(err error) ([]lines.Line, error) {
		return nil, &MacroError{Pos: m.Pos, Name: inv.Name, Err: err}
	}

	switch strings.ToLower(inv.Name) {

	case "include":
		if len(inv.Args) != 1 {
			return fail(fmt.Errorf("%w: want 1 argument, got %d", ErrSyntax, len(inv.Args)))
		}
		src := inv.Args[0]
		if err := e.enter(src, depth, stack); err != nil {
			return fail(err)
		}
		text, err := e.fetch(ctx, src)
		if err != nil {
			return fail(err)
		}
		e.logger().DebugContext(ctx, "include",
			"path", src,
			"depth", depth+1,
		)
		return e.expandNested(ctx, lines.ParseAll(text, src), depth, stack, src)

	case "script":
		if len(inv.Args) != 1 {
			return fail(fmt.Errorf("%w: want 1 argument, got %d", ErrSyntax, len(inv.Args)))
		}
		src := inv.Args[0]
		if err := e.enter(src, depth, stack); err != nil {
			return fail(err)
		}
		ls, err := e.runScript(ctx, src)
		if err != nil {
			return fail(err)
		}
		return e.expandNested(ctx, ls, depth, stack, src)

	}

	return fail(ErrUnknownMacro)
}

func (e Expander) expandNested(ctx context.Context, ls []lines.Line, depth int, stack []string, src string) ([]lines.Line, error) {
	return e.expand(ctx, ls, depth+1, append(slices.Clip(stack), stackKey(src)))
}

func stackKey(src string) string {
	return path.Clean(src)
}

func (e Expander) enter(src string, depth int, stack []string) error {
	if slices.Contains(stack, stackKey(src)) {
		return fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(append(slices.Clip(stack), stackKey(src)), " -> "))
	}
	if depth+1 > e.maxDepth() {
		return fmt.Errorf("%w: limit is %d", ErrDepthExceeded, e.maxDepth())
	}
	return nil
}

func (e Expander) fetch(ctx context.Context, src string) (string, error) {
	if e.Fetcher == nil {
		return "", fmt.Errorf("%s: %w", src, ErrNotFound)
	}
	text, err := e.Fetcher.Fetch(ctx, src)
	if err != nil {
		return "", err
	}
	return NormalizeText(text), nil
}

// NormalizeText converts CRLF line endings and drops one trailing newline.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimSuffix(text, "\n")
}
