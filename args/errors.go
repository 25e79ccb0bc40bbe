package args

import (
	"fmt"
	"reflect"
)

type MissingBindingError struct {
	Name string
}

func (m *MissingBindingError) Error() string {
	return fmt.Sprintf("the argument %q is absent", m.Name)
}

type TypeMismatchError struct {
	Name     string
	Expected reflect.Type
	Actual   reflect.Type
}

func (t *TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"the argument %q is %s, expecting %s",
		t.Name,
		typeName(t.Actual),
		typeName(t.Expected),
	)
}

type InvocationError struct {
	Name string
	Err  error
}

func (i *InvocationError) Error() string {
	return fmt.Sprintf("call argument %q: %v", i.Name, i.Err)
}

func (i *InvocationError) Unwrap() error {
	return i.Err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
