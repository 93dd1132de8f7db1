package main

import (
	"github.com/reusee/bf/bfrun"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Run    bfrun.Module
	Debugs debugs.Module
}
