package starlarks

import (
	"fmt"

	"go.starlark.net/starlark"
)

// FromValue converts a Starlark value to a Go value.
// Ints that do not fit int64 are returned as *big.Int.
// A formed object is returned as its args.Env.
func FromValue(v starlark.Value) (any, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil, nil

	case *Formed:
		return v.Env, nil

	case starlark.Bool:
		return bool(v), nil

	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		return v.BigInt(), nil

	case starlark.Float:
		return float64(v), nil

	case starlark.String:
		return string(v), nil

	case starlark.Bytes:
		return []byte(v), nil

	case *starlark.List:
		ret := make([]any, 0, v.Len())
		for i := range v.Len() {
			elem, err := FromValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem)
		}
		return ret, nil

	case starlark.Tuple:
		ret := make([]any, 0, len(v))
		for _, e := range v {
			elem, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem)
		}
		return ret, nil

	case *starlark.Dict:
		ret := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			elem, err := FromValue(item[1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			ret[key] = elem
		}
		return ret, nil

	}

	return nil, fmt.Errorf("unsupported starlark type: %s", v.Type())
}
