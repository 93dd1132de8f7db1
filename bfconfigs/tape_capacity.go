package bfconfigs

import (
	"errors"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type TapeCapacity int

var _ configs.Configurable = TapeCapacity(0)

func (TapeCapacity) ConfigPath() string {
	return "tape_capacity"
}

const defaultTapeCapacity = 4096

// nil when not given
var tapeCapacityFlag = cmds.Var[*int]("-tape-capacity")

func (Module) TapeCapacity(
	loader configs.Loader,
) TapeCapacity {
	// flag
	if n := *tapeCapacityFlag; n != nil {
		return TapeCapacity(max(*n, 0))
	}

	// config, zero included
	v, err := configs.Lookup[TapeCapacity](loader)
	if err == nil {
		return v
	}
	if !errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}

	return defaultTapeCapacity
}
