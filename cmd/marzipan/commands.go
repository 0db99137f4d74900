package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmounce/marzipan/compiles"
	"github.com/cmounce/marzipan/diags"
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/worlds"
)

type env struct {
	compiler  compiles.Compiler
	formatter diags.Formatter
	logger    logs.Logger
	output    string
	suffix    string
	stdout    io.Writer
	stderr    io.Writer
}

func (e env) fail(ctx context.Context, err error) int {
	fmt.Fprintln(e.stderr, e.formatter.FormatAll(ctx, err))
	return 1
}

// outputPath inserts suffix before the extension: town.zzt -> town.out.zzt
func outputPath(path string, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func build(ctx context.Context, e env, path string) int {
	world, err := worlds.Load(path)
	if err != nil {
		return e.fail(ctx, err)
	}

	objects := world.Objects()
	e.logger.InfoContext(ctx, "compiling",
		"path", path,
		"objects", len(objects),
	)
	results := e.compiler.CompileAll(ctx, objects)
	if err := compiles.Errors(results); err != nil {
		return e.fail(ctx, err)
	}
	for _, result := range results {
		if err := world.SetCode(result.Object.ID, result.Code); err != nil {
			return e.fail(ctx, err)
		}
	}

	out := e.output
	if out == "" {
		out = outputPath(path, e.suffix)
	}
	if err := worlds.Save(out, world); err != nil {
		return e.fail(ctx, err)
	}
	e.logger.InfoContext(ctx, "written", "path", out)
	return 0
}

func compileFile(ctx context.Context, e env, path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		return e.fail(ctx, err)
	}
	code := strings.ReplaceAll(string(content), "\r\n", "\n")
	compiled, err := e.compiler.Compile(ctx, compiles.Object{
		ID: compiles.ObjectID{
			Board: -1,
			Name:  compiles.ObjectName(code),
		},
		Code: code,
	})
	if err != nil {
		return e.fail(ctx, err)
	}
	fmt.Fprint(e.stdout, compiled)
	return 0
}

func dump(ctx context.Context, e env, path string) int {
	world, err := worlds.Load(path)
	if err != nil {
		return e.fail(ctx, err)
	}
	for i, object := range world.Objects() {
		if i > 0 {
			fmt.Fprintln(e.stdout)
		}
		name := "stat"
		if object.ID.Name != "" {
			name = "@" + object.ID.Name
		}
		fmt.Fprintf(e.stdout, " => %s -> %s -> %s (%d,%d)\n",
			path, object.ID.BoardName, name, object.ID.X, object.ID.Y)
		fmt.Fprintln(e.stdout, object.Code)
	}
	return 0
}
