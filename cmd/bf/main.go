package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/bfrun"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var (
	sourcePath = cmds.Var[string]("-file")
	inputPath  = cmds.Var[string]("-input")
	loadTape   = cmds.Var[string]("-load-tape")
	saveTape   = cmds.Var[string]("-save-tape")
	tapFlag    = cmds.Switch("-tap")
	tapScript  = cmds.Var[string]("-tap-script")
)

func init() {
	cmds.Default(cmds.Func(func(path string) error {
		if *sourcePath != "" {
			return fmt.Errorf("more than one program file: %s %s", *sourcePath, path)
		}
		*sourcePath = path
		return nil
	}).Desc("program file"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if *sourcePath == "" {
		fmt.Fprintln(os.Stderr, "usage: bf <file> [options]")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		newRunner bfrun.NewRunner,
		tap debugs.Tap,
		eval debugs.Eval,
	) {
		err = run(context.Background(), newRunner, tap, eval, os.Stdin, os.Stdout)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	newRunner bfrun.NewRunner,
	tap debugs.Tap,
	eval debugs.Eval,
	stdin io.Reader,
	stdout io.Writer,
) error {
	input := stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}
	term := bfrun.NewTerminal(input, stdout)
	defer term.Flush()

	runner := newRunner(term, term)
	runner.LoadTape = *loadTape
	runner.SaveTape = *saveTape

	state, err := runner.RunFile(ctx, *sourcePath)
	if err != nil {
		return err
	}
	if *tapScript != "" {
		script, err := os.ReadFile(*tapScript)
		if err != nil {
			return err
		}
		if _, err := eval(ctx, *tapScript, string(script), debugs.TapeGlobals(state)); err != nil {
			return err
		}
	}
	if *tapFlag {
		tap(ctx, *sourcePath, debugs.TapeGlobals(state))
	}
	return nil
}
