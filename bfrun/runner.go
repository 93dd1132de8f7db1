package bfrun

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

type Runner struct {
	Logger  logs.Logger
	NewSpan logs.NewSpan
	Input   io.Reader
	Output  io.Writer
	// reject unmatched closing brackets
	Strict bool
	// headroom of new tapes
	Capacity int
	// tape to continue from, if not empty
	LoadTape string
	// where to write the final tape, if not empty
	SaveTape string
}

func (r *Runner) RunFile(ctx context.Context, path string) (*bfvm.State, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	return r.RunSource(ctx, path, string(content))
}

// RunSource parses and executes source. Parse errors are returned before
// anything runs.
func (r *Runner) RunSource(ctx context.Context, name string, source string) (*bfvm.State, error) {
	if r.NewSpan != nil {
		ctx, _ = r.NewSpan(ctx, "")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := []bflang.ParseOption{
		bflang.SourceName(name),
	}
	if r.Strict {
		options = append(options, bflang.StrictBrackets())
	}
	program, err := bflang.Parse(source, options...)
	if err != nil {
		r.Logger.ErrorContext(ctx, "parse failed", "name", name, "error", err)
		return nil, logs.WrapSpan(ctx, err)
	}
	stats := program.Stats()
	r.Logger.DebugContext(ctx, "program parsed",
		"name", name,
		"commands", stats.Commands,
		"operators", stats.Operators,
		"loops", stats.Loops,
		"depth", stats.MaxDepth,
	)

	state, err := r.initState(ctx)
	if err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}

	start := time.Now()
	if err := bfvm.Execute(program, r.Input, r.Output, state); err != nil {
		r.Logger.ErrorContext(ctx, "execution aborted",
			"name", name,
			"error", err,
			"elapsed", time.Since(start),
		)
		return state, logs.WrapSpan(ctx, err)
	}
	if f, ok := r.Output.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return state, logs.WrapSpan(ctx, &bfvm.IOError{
				Op:  "output",
				Err: err,
			})
		}
	}
	r.Logger.InfoContext(ctx, "execution completed",
		"name", name,
		"tape", state.Len(),
		"position", state.Position(),
		"elapsed", time.Since(start),
	)

	if r.SaveTape != "" {
		if err := saveTape(r.SaveTape, state); err != nil {
			return state, logs.WrapSpan(ctx, err)
		}
		r.Logger.DebugContext(ctx, "tape saved", "path", r.SaveTape)
	}

	return state, nil
}

func (r *Runner) initState(ctx context.Context) (*bfvm.State, error) {
	state := bfvm.NewStateWithCapacity(r.Capacity)
	if r.LoadTape == "" {
		return state, nil
	}
	f, err := os.Open(r.LoadTape)
	if errors.Is(err, os.ErrNotExist) {
		r.Logger.InfoContext(ctx, "no saved tape, starting fresh", "path", r.LoadTape)
		return state, nil
	} else if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	if err := state.Restore(f); err != nil {
		return nil, wrap(err)
	}
	r.Logger.DebugContext(ctx, "tape loaded",
		"path", r.LoadTape,
		"tape", state.Len(),
		"position", state.Position(),
	)
	return state, nil
}

func saveTape(path string, state *bfvm.State) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	if err := state.Snapshot(f); err != nil {
		return wrap(err)
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}
	// atomic replace
	if err := os.Rename(tmp, path); err != nil {
		return wrap(err)
	}
	return nil
}
