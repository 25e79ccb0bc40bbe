package starlarks

import (
	"fmt"

	"github.com/reusee/phiargs/args"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func toEntryValue(thread *starlark.Thread, v starlark.Value) (args.Value, error) {
	if fn, ok := v.(starlark.Callable); ok {
		return args.Deferred(Callable{
			Thread: thread,
			Fn:     fn,
		}), nil
	}
	goValue, err := FromValue(v)
	if err != nil {
		return args.Value{}, err
	}
	return args.Direct(goValue), nil
}

// EnvFromCall forms bindings from call arguments.
// Positional arguments are named "00", "01", ...; keyword arguments are layered over them.
func EnvFromCall(thread *starlark.Thread, tuple starlark.Tuple, kwargs []starlark.Tuple) (args.Env, error) {
	items := make([]any, 0, len(tuple))
	for i, v := range tuple {
		value, err := toEntryValue(thread, v)
		if err != nil {
			return args.Env{}, fmt.Errorf("argument %d: %w", i, err)
		}
		items = append(items, value)
	}
	entries := make([]args.Entry, 0, len(kwargs))
	for _, kv := range kwargs {
		name, ok := starlark.AsString(kv[0])
		if !ok {
			return args.Env{}, fmt.Errorf("bad keyword %s", kv[0])
		}
		value, err := toEntryValue(thread, kv[1])
		if err != nil {
			return args.Env{}, fmt.Errorf("argument %s: %w", name, err)
		}
		entries = append(entries, args.Entry{
			Name:  name,
			Value: value,
		})
	}
	return args.LayeredOver(args.FromPositional(items...), entries...), nil
}

// Former returns a builtin that forms bindings from its call arguments and passes them to form.
func Former(name string, form func(thread *starlark.Thread, env args.Env) (starlark.Value, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, tuple starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		env, err := EnvFromCall(thread, tuple, kwargs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		return form(thread, env)
	})
}

// ExecFile executes a script and binds its globals, in name order.
// Global functions become deferred zero-argument calls.
func ExecFile(thread *starlark.Thread, filename string, src any, predeclared starlark.StringDict) (args.Env, error) {
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared)
	if err != nil {
		return args.Env{}, err
	}
	entries := make([]args.Entry, 0, len(globals))
	for _, name := range globals.Keys() {
		value, err := toEntryValue(thread, globals[name])
		if err != nil {
			return args.Env{}, fmt.Errorf("%s: %w", name, err)
		}
		entries = append(entries, args.Entry{
			Name:  name,
			Value: value,
		})
	}
	return args.FromEntries(entries...), nil
}
