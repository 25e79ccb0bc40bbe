package args

import "fmt"

// Phi is a deferred value. Call produces the value on demand.
type Phi interface {
	Call() (any, error)
}

type PhiFunc func() (any, error)

var _ Phi = PhiFunc(nil)

func (f PhiFunc) Call() (any, error) {
	if f == nil {
		return nil, fmt.Errorf("nil phi")
	}
	return f()
}
