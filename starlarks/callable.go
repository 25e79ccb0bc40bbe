package starlarks

import (
	"github.com/reusee/phiargs/args"
	"go.starlark.net/starlark"
)

// Callable is a deferred Starlark call.
// A Thread must not be used by concurrent calls.
type Callable struct {
	Thread *starlark.Thread
	Fn     starlark.Callable
	Args   starlark.Tuple
}

var _ args.Phi = Callable{}

func (c Callable) Call() (any, error) {
	thread := c.Thread
	if thread == nil {
		thread = &starlark.Thread{
			Name: c.Fn.Name(),
		}
	}
	result, err := starlark.Call(thread, c.Fn, c.Args, nil)
	if err != nil {
		return nil, err
	}
	return FromValue(result)
}
