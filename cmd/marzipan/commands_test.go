package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmounce/marzipan/compiles"
	"github.com/cmounce/marzipan/diags"
	"github.com/cmounce/marzipan/worlds"
)

func testEnv(path string) (env, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	return env{
		compiler:  compiles.Compiler{Workers: 2},
		formatter: diags.Formatter{File: path},
		logger:    slog.New(slog.DiscardHandler),
		suffix:    ".out",
		stdout:    stdout,
		stderr:    stderr,
	}, stdout, stderr
}

func writeWorld(t *testing.T, codes ...string) string {
	t.Helper()
	stats := []*worlds.Stat{
		{X: 1, Y: 1, Cycle: 1},
	}
	for i, code := range codes {
		stats = append(stats, &worlds.Stat{
			X:    uint8(10 + i),
			Y:    5,
			Code: code,
		})
	}
	world := &worlds.World{
		Health: 100,
		Name:   []byte("TEST"),
		Boards: []*worlds.Board{
			{
				Name:    "Start",
				Terrain: make([]worlds.Tile, worlds.NumTiles),
				Stats:   stats,
			},
		},
	}
	path := filepath.Join(t.TempDir(), "test.zzt")
	if err := worlds.Save(path, world); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	for in, want := range map[string]string{
		"town.zzt":         "town.out.zzt",
		"dir/a.b/town.zzt": "dir/a.b/town.out.zzt",
		"town":             "town.out",
	} {
		if got := outputPath(in, ".out"); got != want {
			t.Fatalf("%s: got %s", in, got)
		}
	}
}

func TestBuild(t *testing.T) {
	path := writeWorld(t,
		"@Guard\n#end\n:touch\n#if contact @f\nHalt!\n:@\n#end",
		":.a\n#send .a",
	)
	e, _, stderr := testEnv(path)
	if status := build(context.Background(), e, path); status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	world, err := worlds.Load(outputPath(path, ".out"))
	if err != nil {
		t.Fatal(err)
	}
	objects := world.Objects()
	if len(objects) != 2 {
		t.Fatalf("got %d", len(objects))
	}
	if got := objects[0].Code; got != "@Guard\n#end\n:touch\n#if contact _\nHalt!\n:_\n#end" {
		t.Fatalf("got %q", got)
	}
	if got := objects[1].Code; got != ":a\n#send a" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildErrors(t *testing.T) {
	path := writeWorld(t,
		"@Good\n:.a\n#send .a",
		"@Bad\n#send @f",
		"@Worse\n#send .nope",
	)
	e, _, stderr := testEnv(path)
	e.output = filepath.Join(t.TempDir(), "out.zzt")
	if status := build(context.Background(), e, path); status != 1 {
		t.Fatalf("got %d", status)
	}
	got := stderr.String()
	if !strings.Contains(got, "@Bad (11,5) -> line 2") ||
		!strings.Contains(got, "@Worse (12,5) -> line 2") {
		t.Fatalf("got %s", got)
	}
	if strings.Contains(got, "@Good") {
		t.Fatalf("got %s", got)
	}
	if _, err := os.Stat(e.output); !os.IsNotExist(err) {
		t.Fatalf("output written: %v", err)
	}
}

func TestBuildBadWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zzt")
	if err := os.WriteFile(path, []byte("not a world"), 0644); err != nil {
		t.Fatal(err)
	}
	e, _, stderr := testEnv(path)
	if status := build(context.Background(), e, path); status != 1 {
		t.Fatalf("got %d", status)
	}
	if !strings.HasPrefix(stderr.String(), "error: world header") {
		t.Fatalf("got %s", stderr)
	}
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.txt")
	if err := os.WriteFile(path, []byte("@Guard\r\n:@\r\n/n\r\n#send @b\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	e, stdout, stderr := testEnv(path)
	if status := compileFile(context.Background(), e, path); status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if got := stdout.String(); got != "@Guard\n:_\n/n\n#send _\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDump(t *testing.T) {
	path := writeWorld(t, "@Guard\n#end")
	e, stdout, _ := testEnv(path)
	if status := dump(context.Background(), e, path); status != 0 {
		t.Fatalf("got %d", status)
	}
	want := " => " + path + " -> Start -> @Guard (10,5)\n@Guard\n#end\n"
	if got := stdout.String(); got != want {
		t.Fatalf("got %q", got)
	}
}
