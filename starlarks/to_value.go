package starlarks

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/reusee/phiargs/args"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToValue converts a Go value to a Starlark value.
// Deferred bindings and Phis become builtins that call them.
func ToValue(v any) (starlark.Value, error) {
	switch v := v.(type) {

	case nil:
		return starlark.None, nil

	case starlark.Value:
		return v, nil

	case *Formed:
		return v, nil

	case args.Env:
		d := starlark.NewDict(v.Len())
		for name, value := range v.All() {
			sv, err := ToValue(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if err := d.SetKey(starlark.String(name), sv); err != nil {
				return nil, err
			}
		}
		return d, nil

	case args.Value:
		if phi, ok := v.Phi(); ok {
			return phiBuiltin("", phi), nil
		}
		direct, _ := v.Direct()
		return ToValue(direct)

	case args.Phi:
		return phiBuiltin("", v), nil

	case bool:
		return starlark.Bool(v), nil

	case []byte:
		return starlark.Bytes(v), nil
	case string:
		return starlark.String(v), nil

	case int:
		return starlark.MakeInt(v), nil
	case int8:
		return starlark.MakeInt(int(v)), nil
	case int16:
		return starlark.MakeInt(int(v)), nil
	case int32:
		return starlark.MakeInt(int(v)), nil
	case int64:
		return starlark.MakeInt64(v), nil

	case uint:
		return starlark.MakeUint(v), nil
	case uint8:
		return starlark.MakeUint(uint(v)), nil
	case uint16:
		return starlark.MakeUint(uint(v)), nil
	case uint32:
		return starlark.MakeUint(uint(v)), nil
	case uint64:
		return starlark.MakeUint64(v), nil

	case float32:
		return starlark.Float(v), nil
	case float64:
		return starlark.Float(v), nil

	case *big.Int:
		if v == nil {
			return starlark.None, nil
		}
		return starlark.MakeBigInt(v), nil

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool()), nil

	case reflect.String:
		return starlark.String(value.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float()), nil

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elem, err := ToValue(value.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return starlark.NewList(elems), nil

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			k, err := ToValue(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			v, err := ToValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(k, v); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			v, err := ToValue(value.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(field.Name), v); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None, nil
		}
		return ToValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface()), nil

	}

	return nil, fmt.Errorf("unsupported type for starlark: %T", v)
}

func phiBuiltin(name string, phi args.Phi) *starlark.Builtin {
	if name == "" {
		name = "phi"
	}
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, tuple starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), tuple, kwargs, 0); err != nil {
			return nil, err
		}
		result, err := phi.Call()
		if err != nil {
			return nil, err
		}
		return ToValue(result)
	})
}
