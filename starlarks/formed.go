package starlarks

import (
	"fmt"

	"github.com/reusee/phiargs/args"
	"go.starlark.net/starlark"
)

// Formed is an object formed from call arguments.
// Its bindings are readable as attributes; deferred ones are methods.
type Formed struct {
	Env args.Env
}

var _ starlark.HasAttrs = new(Formed)

func (f *Formed) String() string {
	return "form(" + f.Env.String() + ")"
}

func (f *Formed) Type() string {
	return "form"
}

// Freeze does nothing; bindings are immutable.
func (f *Formed) Freeze() {}

func (f *Formed) Truth() starlark.Bool {
	return starlark.Bool(f.Env.Len() > 0)
}

func (f *Formed) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: form")
}

func (f *Formed) Attr(name string) (starlark.Value, error) {
	value, err := f.Env.Get(name)
	if err != nil {
		// nil, nil reports a missing attribute
		return nil, nil
	}
	if phi, ok := value.Phi(); ok {
		return phiBuiltin(name, phi), nil
	}
	direct, _ := value.Direct()
	return ToValue(direct)
}

func (f *Formed) AttrNames() []string {
	return f.Env.Keys()
}

// Form returns the "form" builtin: form(1, 2, label = "x") forms bindings
// "00", "01" and "label".
func Form() *starlark.Builtin {
	return Former("form", func(thread *starlark.Thread, env args.Env) (starlark.Value, error) {
		return &Formed{
			Env: env,
		}, nil
	})
}
