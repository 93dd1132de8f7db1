package bfrun

import (
	"io"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

type NewRunner func(input io.Reader, output io.Writer) *Runner

func (Module) NewRunner(
	logger logs.Logger,
	newSpan logs.NewSpan,
	strict bfconfigs.StrictBrackets,
	capacity bfconfigs.TapeCapacity,
) NewRunner {
	return func(input io.Reader, output io.Writer) *Runner {
		return &Runner{
			Logger:   logger,
			NewSpan:  newSpan,
			Input:    input,
			Output:   output,
			Strict:   bool(strict),
			Capacity: int(capacity),
		}
	}
}
