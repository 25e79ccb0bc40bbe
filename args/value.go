package args

import "fmt"

type valueKind uint8

const (
	kindDirect valueKind = iota
	kindDeferred
)

// Value is either a direct value or a deferred one.
// The zero Value is Direct(nil).
type Value struct {
	direct any
	phi    Phi
	kind   valueKind
}

func Direct(v any) Value {
	return Value{
		direct: v,
		kind:   kindDirect,
	}
}

func Deferred(phi Phi) Value {
	return Value{
		phi:  phi,
		kind: kindDeferred,
	}
}

// Of lifts v into a Value. A Value is returned as is, a Phi becomes Deferred.
func Of(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case Phi:
		return Deferred(v)
	}
	return Direct(v)
}

func (v Value) IsDeferred() bool {
	return v.kind == kindDeferred
}

func (v Value) Phi() (Phi, bool) {
	if v.kind != kindDeferred {
		return nil, false
	}
	return v.phi, true
}

func (v Value) Direct() (any, bool) {
	if v.kind != kindDirect {
		return nil, false
	}
	return v.direct, true
}

// Resolve returns the direct value, or invokes the Phi exactly once.
func (v Value) Resolve() (any, error) {
	switch v.kind {
	case kindDeferred:
		if v.phi == nil {
			return nil, fmt.Errorf("nil phi")
		}
		return v.phi.Call()
	default:
		return v.direct, nil
	}
}

func (v Value) String() string {
	if v.kind == kindDeferred {
		return "<deferred>"
	}
	return fmt.Sprintf("%v", v.direct)
}
