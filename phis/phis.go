package phis

import (
	"sync"

	"github.com/reusee/phiargs/args"
)

func Func(fn func() (any, error)) args.Phi {
	return args.PhiFunc(fn)
}

// Once returns a Phi that calls phi at most once and replays its result.
func Once(phi args.Phi) args.Phi {
	return args.PhiFunc(sync.OnceValues(phi.Call))
}
