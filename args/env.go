package args

import (
	"iter"
	"slices"
	"strings"
)

// Env is an immutable set of named bindings.
// Keys are kept in insertion order; an overridden name keeps its first position.
// The zero Env is empty.
type Env struct {
	values map[string]Value
	keys   []string
}

func Empty() Env {
	return Env{}
}

func FromPositional(items ...any) Env {
	return LayeredOver(Env{}, positionalEntries(items)...)
}

func FromEntries(entries ...Entry) Env {
	return LayeredOver(Env{}, entries...)
}

func LayeredOver(base Env, entries ...Entry) Env {
	ret := Env{
		values: make(map[string]Value, len(base.keys)+len(entries)),
		keys:   make([]string, 0, len(base.keys)+len(entries)),
	}
	for _, name := range base.keys {
		ret.set(name, base.values[name])
	}
	for _, entry := range entries {
		ret.set(entry.Name, entry.Value)
	}
	return ret
}

func (e *Env) set(name string, value Value) {
	if _, ok := e.values[name]; !ok {
		e.keys = append(e.keys, name)
	}
	e.values[name] = value
}

func (e Env) Get(name string) (Value, error) {
	value, ok := e.values[name]
	if !ok {
		return Value{}, &MissingBindingError{
			Name: name,
		}
	}
	return value, nil
}

func (e Env) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

func (e Env) Len() int {
	return len(e.keys)
}

func (e Env) Keys() []string {
	return slices.Clone(e.keys)
}

func (e Env) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range e.keys {
			if !yield(name, e.values[name]) {
				return
			}
		}
	}
}

func (e Env) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range e.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(e.values[name].String())
	}
	sb.WriteString("}")
	return sb.String()
}
