package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/phiargs/cmds"
	"github.com/reusee/phiargs/logs"
	"github.com/reusee/phiargs/phis"
	"github.com/reusee/phiargs/starlarks"
)

func main() {
	dscope.New(
		new(logs.Module),
		new(phis.Module),
		new(starlarks.Module),
	).Call(func(
		logger logs.Logger,
		trace phis.Trace,
		tap starlarks.Tap,
	) {
		s := &session{
			ctx:         context.Background(),
			logger:      logger,
			trace:       trace,
			tap:         tap,
			traced:      cmds.Switch("-trace"),
			once:        cmds.Switch("-once"),
			schemaFile:  cmds.Var[string]("-schema"),
			configFiles: cmds.Collect[string]("-config"),
			out:         os.Stdout,
		}
		define(cmds.GlobalExecutor, s)
		if err := cmds.ExecuteArgs(); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(-1)
		}
	})
}

func define(executor *cmds.Executor, s *session) {
	executor.Define("load", cmds.Sub(map[string]*cmds.Command{
		"cue": cmds.Func(s.loadCue).
			Desc("layer the struct or list at PATH of a CUE file"),
		"star": cmds.Func(s.loadStarlark).
			Desc("layer the globals of a Starlark file"),
		"defaults": cmds.Func(s.defaults).
			Desc("layer the defaults of the -config files"),
	}).Desc("enable the source commands"))
	executor.Define("set", cmds.Func(s.set).
		Desc("layer a string binding"))
	executor.Define("keys", cmds.Func(s.keys).
		Desc("print binding names"))
	executor.Define("get", cmds.Func(s.get).
		Desc("print a binding without calling it"))
	executor.Define("call", cmds.Func(func(name string) error {
		return s.call(name, "any")
	}).Desc("call a binding and print the result"))
	executor.Define("call-as", cmds.Func(s.call).
		Desc("call a binding, expecting a type: any string int64 float64 bool env"))
	executor.Define("repl", cmds.Func(s.repl).
		Desc("open a Starlark REPL with the bindings as globals"))
}
