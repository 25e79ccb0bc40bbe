package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"

	"github.com/reusee/phiargs/args"
	"github.com/reusee/phiargs/configs"
	"github.com/reusee/phiargs/logs"
	"github.com/reusee/phiargs/phis"
	"github.com/reusee/phiargs/starlarks"
	"go.starlark.net/starlark"
)

type session struct {
	ctx    context.Context
	logger logs.Logger
	trace  phis.Trace
	tap    starlarks.Tap
	traced *bool
	// deferred bindings replay their first result
	once *bool
	// CUE schema file for loaded files; overrides "schema" in settings
	schemaFile *string
	// CUE files holding tool settings
	configFiles *[]string
	out         io.Writer
	env         args.Env
}

var settingsSchema = `
schema?: string
defaults?: [string]: string
`

func (s *session) settings() configs.Loader {
	var files []string
	if s.configFiles != nil {
		files = *s.configFiles
	}
	return configs.NewLoader(files, settingsSchema)
}

func (s *session) schema() (string, error) {
	if s.schemaFile != nil && *s.schemaFile != "" {
		content, err := os.ReadFile(*s.schemaFile)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return configs.First[string](s.settings(), "schema")
}

var callTypes = map[string]reflect.Type{
	"any":     reflect.TypeFor[any](),
	"string":  reflect.TypeFor[string](),
	"int64":   reflect.TypeFor[int64](),
	"float64": reflect.TypeFor[float64](),
	"bool":    reflect.TypeFor[bool](),
	"env":     reflect.TypeFor[args.Env](),
}

func (s *session) layer(env args.Env, source string) {
	if s.traced != nil && *s.traced {
		env = phis.TraceEnv(s.ctx, s.trace, env)
	}
	once := s.once != nil && *s.once
	var entries []args.Entry
	for name, value := range env.All() {
		if phi, ok := value.Phi(); ok && phi != nil && once {
			value = args.Deferred(phis.Once(phi))
		}
		entries = append(entries, args.Entry{
			Name:  name,
			Value: value,
		})
	}
	s.env = args.LayeredOver(s.env, entries...)
	s.logger.InfoContext(s.ctx, "layered",
		"source", source,
		"bindings", env.Len(),
		"total", s.env.Len(),
	)
}

func (s *session) loadCue(file string, path string) error {
	schema, err := s.schema()
	if err != nil {
		return err
	}
	loader := configs.NewLoader([]string{file}, schema)
	env, err := configs.Args(loader, path)
	if err != nil {
		return err
	}
	s.layer(env, file)
	return nil
}

func (s *session) loadStarlark(file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	thread := &starlark.Thread{
		Name: file,
		Print: func(_ *starlark.Thread, msg string) {
			s.logger.InfoContext(s.ctx, "print", "file", file, "msg", msg)
		},
	}
	env, err := starlarks.ExecFile(thread, file, src, starlark.StringDict{
		"form": starlarks.Form(),
	})
	if err != nil {
		return err
	}
	s.layer(env, file)
	return nil
}

// defaults layers the "defaults" struct of every settings file, in order.
func (s *session) defaults() error {
	settings := s.settings()
	paths, err := settings.Paths()
	if err != nil {
		return err
	}
	s.logger.DebugContext(s.ctx, "settings", "files", paths)
	var entries []args.Entry
	for values, err := range configs.All[map[string]string](settings, "defaults") {
		if err != nil {
			return err
		}
		names := slices.Sorted(maps.Keys(values))
		for _, name := range names {
			entries = append(entries, args.E(name, values[name]))
		}
	}
	s.layer(args.FromEntries(entries...), "defaults")
	return nil
}

func (s *session) set(name string, value string) {
	s.layer(args.FromEntries(args.E(name, value)), "set")
}

func (s *session) keys() {
	for _, name := range s.env.Keys() {
		fmt.Fprintln(s.out, name)
	}
}

func (s *session) get(name string) error {
	value, err := s.env.Get(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %v\n", name, value)
	return nil
}

func (s *session) call(name string, typeName string) error {
	t, ok := callTypes[typeName]
	if !ok {
		var names []string
		for n := range callTypes {
			names = append(names, n)
		}
		slices.Sort(names)
		return fmt.Errorf("unknown type %s, expecting one of %v", typeName, names)
	}
	result, err := args.CallType(s.env, name, t)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %v\n", name, result)
	return nil
}

func (s *session) repl() error {
	return s.tap(s.ctx, "bindings", s.env)
}
