package macros

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmounce/marzipan/lines"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// runScript executes a Starlark file. Scripts see:
//
//	emit(text)     append lines to the object
//	include(path)  fetch another resource and return its text
//	object         the object being compiled, as a dict
func (e Expander) runScript(ctx context.Context, src string) ([]lines.Line, error) {
	code, err := e.fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	var ret []lines.Line
	thread := &starlark.Thread{
		Name: src,
		Print: func(thread *starlark.Thread, msg string) {
			e.logger().InfoContext(ctx, msg, "script", src)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	emit := starlarkutil.MakeFunc("emit", func(text string) {
		line := 0
		if thread.CallStackDepth() > 1 {
			line = int(thread.CallFrame(1).Pos.Line)
		}
		for _, t := range strings.Split(text, "\n") {
			ret = append(ret, lines.Parse(t, lines.Pos{
				Source: src,
				Line:   line,
			}))
		}
	})

	include := starlark.NewBuiltin("include", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var path string
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &path); err != nil {
			return nil, err
		}
		text, err := e.fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		return starlark.String(text), nil
	})

	predeclared := starlark.StringDict{
		"emit":    emit,
		"include": include,
		"object":  toStarlarkValue(e.Object),
	}

	if _, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		},
		thread,
		src,
		code,
		predeclared,
	); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("script stopped: %w", ctxErr)
		}
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return nil, fmt.Errorf("script failed: %s", evalErr.Backtrace())
		}
		return nil, fmt.Errorf("script failed: %w", err)
	}

	return ret, nil
}
