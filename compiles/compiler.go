package compiles

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/cmounce/marzipan/labels"
	"github.com/cmounce/marzipan/lines"
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/macros"
	"github.com/cmounce/marzipan/procs"
	"github.com/cmounce/marzipan/syncs"
)

type Compiler struct {
	Fetcher  macros.Fetcher
	MaxDepth int
	Workers  int
	Logger   logs.Logger
	NewSpan  logs.NewSpan
}

type Result struct {
	Object Object
	Code   string
	Err    error
}

type compilation struct {
	object   Object
	reserved []string
	lines    []lines.Line
	sections []labels.Section
	alloc    *labels.Allocator
	output   string
}

func (c Compiler) logger() logs.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c Compiler) stage(name string, fn func(ctx context.Context, comp *compilation) error) procs.Proc[*compilation] {
	return procs.Named[*compilation]{
		Name: name,
		Proc: procs.Func[*compilation](func(ctx context.Context, comp *compilation) error {
			c.logger().DebugContext(ctx, "stage", "name", name)
			return fn(ctx, comp)
		}),
	}
}

// expandStages produce the object's full line list.
func (c Compiler) expandStages() procs.Procs[*compilation] {
	return procs.Procs[*compilation]{

		c.stage("parse", func(ctx context.Context, comp *compilation) error {
			comp.lines = lines.ParseAll(comp.object.Code, "")
			return nil
		}),

		c.stage("expand", func(ctx context.Context, comp *compilation) (err error) {
			comp.lines, err = macros.Expander{
				Fetcher:  c.Fetcher,
				MaxDepth: c.MaxDepth,
				Logger:   c.Logger,
				Object:   comp.object.ID,
			}.Expand(ctx, comp.lines)
			return
		}),
	}
}

// resolveStages rewrite expanded lines into vanilla code. Generated names
// avoid the object's own names and comp.reserved.
func (c Compiler) resolveStages() procs.Procs[*compilation] {
	return procs.Procs[*compilation]{

		c.stage("split", func(ctx context.Context, comp *compilation) error {
			comp.sections = labels.Split(comp.lines)
			comp.alloc = labels.NewAllocator(labels.Names(comp.lines)...)
			comp.alloc.Reserve(comp.reserved...)
			return nil
		}),

		c.stage("anonymous", func(ctx context.Context, comp *compilation) (err error) {
			comp.sections, err = labels.ResolveAnonymous(comp.sections, comp.alloc)
			return
		}),

		c.stage("local", func(ctx context.Context, comp *compilation) (err error) {
			comp.sections, err = labels.ResolveLocal(comp.sections, comp.alloc)
			return
		}),

		c.stage("emit", func(ctx context.Context, comp *compilation) error {
			comp.output = Emit(comp.sections)
			return nil
		}),
	}
}

func (c Compiler) context(ctx context.Context, object Object) context.Context {
	ctx = logs.WithObject(ctx, object.ID.String())
	if c.NewSpan != nil {
		ctx, _ = c.NewSpan(ctx, "")
	}
	return ctx
}

func (c Compiler) run(ctx context.Context, stages procs.Procs[*compilation], comp *compilation) error {
	err := procs.Run[*compilation](ctx, stages, comp)
	if err == nil {
		return nil
	}
	// stage names are only for the log
	var stepErr *procs.StepError
	if errors.As(err, &stepErr) {
		c.logger().ErrorContext(ctx, "compile failed",
			"stage", stepErr.Step,
			"error", stepErr.Err,
		)
		err = stepErr.Err
	}
	return &ObjectError{
		Object: comp.object.ID,
		Source: comp.object.Code,
		Err:    err,
	}
}

func (c Compiler) done(ctx context.Context, comp *compilation) {
	c.logger().InfoContext(ctx, "compiled",
		"lines", len(comp.lines),
		"sections", len(comp.sections),
	)
}

// Compile turns one object's extended source into vanilla ZZT-OOP. Errors are
// *ObjectError. Only the object's own label names are avoided; objects
// sharing a board go through CompileAll.
func (c Compiler) Compile(ctx context.Context, object Object) (string, error) {
	ctx = c.context(ctx, object)
	comp := &compilation{
		object: object,
	}
	if err := c.run(ctx, append(c.expandStages(), c.resolveStages()...), comp); err != nil {
		return "", err
	}
	c.done(ctx, comp)
	return comp.output, nil
}

// CompileAll compiles objects in parallel. Results are in input order and
// every failure is reported in its own Result.
//
// Messages travel between objects of a board, so every name defined or
// referenced anywhere on a board is reserved for all of its objects before
// any label is generated.
func (c Compiler) CompileAll(ctx context.Context, objects []Object) []Result {
	workers := c.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	sem := syncs.NewSemaphore(workers)

	results := make([]Result, len(objects))
	comps := make([]*compilation, len(objects))
	each := func(fn func(i int, ctx context.Context, comp *compilation) error) {
		wg := new(sync.WaitGroup)
		for i, object := range objects {
			if results[i].Err != nil {
				continue
			}
			wg.Go(func() {
				if err := sem.AcquireContext(ctx); err != nil {
					results[i].Err = &ObjectError{
						Object: object.ID,
						Source: object.Code,
						Err:    err,
					}
					return
				}
				defer sem.Release()
				results[i].Err = fn(i, c.context(ctx, object), comps[i])
			})
		}
		wg.Wait()
	}

	for i, object := range objects {
		results[i].Object = object
		comps[i] = &compilation{
			object: object,
		}
	}

	each(func(i int, ctx context.Context, comp *compilation) error {
		return c.run(ctx, c.expandStages(), comp)
	})

	boardNames := make(map[int][]string)
	for i, comp := range comps {
		var ls []lines.Line
		if results[i].Err == nil {
			ls = comp.lines
		} else {
			ls = lines.ParseAll(comp.object.Code, "")
		}
		board := comp.object.ID.Board
		boardNames[board] = append(boardNames[board], labels.Names(ls)...)
	}
	for _, comp := range comps {
		comp.reserved = boardNames[comp.object.ID.Board]
	}

	each(func(i int, ctx context.Context, comp *compilation) error {
		if err := c.run(ctx, c.resolveStages(), comp); err != nil {
			return err
		}
		c.done(ctx, comp)
		results[i].Code = comp.output
		return nil
	})

	return results
}

// Errors collects the failures of results.
func Errors(results []Result) error {
	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}
	return errors.Join(errs...)
}
