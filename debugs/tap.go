package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

func newThread(ctx context.Context, logger logs.Logger, name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			logger.InfoContext(ctx, msg, "thread", name)
		},
	}
}

// Tap opens an interactive starlark session on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()
		repl.REPLOptions(
			fileOptions,
			&starlark.Thread{
				Name: "tap",
			},
			toStringDict(globals),
		)
	}
}

// Eval runs a starlark script with globals bound and returns the globals the
// script defines. print() goes to the logger.
type Eval func(ctx context.Context, filename string, script string, globals map[string]any) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, filename string, script string, globals map[string]any) (starlark.StringDict, error) {
		thread := newThread(ctx, logger, filename)
		thread.SetLocal("context", ctx)
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()
		return starlark.ExecFileOptions(
			fileOptions,
			thread,
			filename,
			script,
			toStringDict(globals),
		)
	}
}
