package args

import "reflect"

// Call resolves name and casts the result to T.
// A deferred binding is invoked exactly once per Call.
// A nil result casts to any T that can be nil.
func Call[T any](env Env, name string) (ret T, err error) {
	result, err := resolve(env, name)
	if err != nil {
		return ret, err
	}
	if result == nil {
		if expected := reflect.TypeFor[T](); !nilable(expected) {
			return ret, &TypeMismatchError{
				Name:     name,
				Expected: expected,
			}
		}
		return ret, nil
	}
	ret, ok := result.(T)
	if !ok {
		return ret, &TypeMismatchError{
			Name:     name,
			Expected: reflect.TypeFor[T](),
			Actual:   reflect.TypeOf(result),
		}
	}
	return ret, nil
}

// CallType is Call with the expected type given at run time.
// Values must be of the expected type or, for interface types, implement it.
// A nil result of a nilable expected type is returned as the typed zero value.
func CallType(env Env, name string, expected reflect.Type) (any, error) {
	result, err := resolve(env, name)
	if err != nil {
		return nil, err
	}
	if expected == nil {
		return nil, &TypeMismatchError{
			Name:   name,
			Actual: reflect.TypeOf(result),
		}
	}
	if result == nil {
		if !nilable(expected) {
			return nil, &TypeMismatchError{
				Name:     name,
				Expected: expected,
			}
		}
		if expected.Kind() == reflect.Interface {
			return nil, nil
		}
		return reflect.Zero(expected).Interface(), nil
	}
	actual := reflect.TypeOf(result)
	if actual != expected &&
		!(expected.Kind() == reflect.Interface && actual.Implements(expected)) {
		return nil, &TypeMismatchError{
			Name:     name,
			Expected: expected,
			Actual:   actual,
		}
	}
	return result, nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface,
		reflect.Pointer,
		reflect.Slice,
		reflect.Map,
		reflect.Func,
		reflect.Chan,
		reflect.UnsafePointer:
		return true
	}
	return false
}

func resolve(env Env, name string) (any, error) {
	value, err := env.Get(name)
	if err != nil {
		return nil, err
	}
	result, err := value.Resolve()
	if err != nil {
		return nil, &InvocationError{
			Name: name,
			Err:  err,
		}
	}
	return result, nil
}
