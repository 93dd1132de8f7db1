package bfconfigs

import (
	"errors"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type StrictBrackets bool

var _ configs.Configurable = StrictBrackets(false)

func (StrictBrackets) ConfigPath() string {
	return "strict_brackets"
}

// set by flags, nil when not given
var strictFlag *bool

func init() {
	cmds.Define("-strict", cmds.Func(func() {
		v := true
		strictFlag = &v
	}).Desc("reject unmatched closing brackets"))
	cmds.Define("-lax", cmds.Func(func() {
		v := false
		strictFlag = &v
	}).Desc("stop parsing at an unmatched closing bracket"))
}

func (Module) StrictBrackets(
	loader configs.Loader,
) StrictBrackets {
	// flag
	if strictFlag != nil {
		return StrictBrackets(*strictFlag)
	}

	// config
	v, err := configs.Lookup[StrictBrackets](loader)
	if err == nil {
		return v
	}
	if !errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}

	return true
}
