package starlarks

import (
	"context"
	"fmt"

	"github.com/reusee/phiargs/args"
	"github.com/reusee/phiargs/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with the bindings of env as globals.
type Tap func(ctx context.Context, what string, env args.Env) error

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env args.Env) error {
		globals, skipped, err := Globals(env)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "tap: "+what,
			"globals", env.Keys(),
		)
		if len(skipped) > 0 {
			logger.InfoContext(ctx, "not identifiers, use "+BindingsGlobal+"[name]",
				"names", skipped,
			)
		}
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
		return nil
	}
}

// BindingsGlobal names the global dict holding every binding,
// including those whose names are not identifiers, like "00".
const BindingsGlobal = "bindings"

// Globals converts bindings to Starlark globals.
// Names that are not identifiers are skipped and returned; all bindings are
// also reachable through the BindingsGlobal dict, unless a binding takes that name.
func Globals(env args.Env) (globals starlark.StringDict, skipped []string, err error) {
	globals = make(starlark.StringDict, env.Len()+1)
	all, err := ToValue(env)
	if err != nil {
		return nil, nil, err
	}
	globals[BindingsGlobal] = all
	for name, value := range env.All() {
		if !isIdent(name) {
			skipped = append(skipped, name)
			continue
		}
		v, err := ToValue(value)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		globals[name] = v
	}
	return globals, skipped, nil
}

func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
